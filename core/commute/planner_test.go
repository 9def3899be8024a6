package commute

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/commuteco2/core/model"
	"github.com/kilianp07/commuteco2/core/route"
	"github.com/kilianp07/commuteco2/infra/logger"
)

func TestPlanConstant(t *testing.T) {
	p, err := NewPlanner(route.NewConstant(route.ConstantConfig{}), logger.NopLogger{})
	require.NoError(t, err)

	res, err := p.Plan(context.Background(), Home, Work)
	require.NoError(t, err)
	require.Len(t, res, 4)

	want := []struct {
		mode     model.Mode
		distance float64
		grams    float64
		savings  float64
	}{
		{model.ModeBike, 20000, 0, 100},
		{model.ModeBus, 20000, 1730000, 100 - 1730000.0/2360000*100},
		{model.ModeCar, 20000, 2360000, 0},
		{model.ModeCarPool, 22000, 1298000, 100 - 1298000.0/2360000*100},
	}
	for i, w := range want {
		assert.Equal(t, w.mode, res[i].Mode)
		assert.InDelta(t, w.distance, res[i].DistanceMeters, 1e-6, w.mode.String())
		assert.InDelta(t, w.grams, res[i].EmissionGrams, 1e-3, w.mode.String())
		assert.InDelta(t, w.savings, res[i].SavingsPct, 1e-9, w.mode.String())
		assert.Zero(t, res[i].Duration)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	p, err := NewPlanner(route.NewConstant(route.ConstantConfig{}), logger.NopLogger{})
	require.NoError(t, err)
	first, err := p.Plan(context.Background(), Home, Work)
	require.NoError(t, err)
	second, err := p.Plan(context.Background(), Home, Work)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlanKeepsDurations(t *testing.T) {
	provider := route.ProviderFunc(func(_ context.Context, _, _ string, mode model.Mode) (model.Measurement, error) {
		return model.Measurement{
			DistanceMeters: route.AdjustDistance(10000, mode),
			Duration:       time.Duration(int(mode)+1) * time.Minute,
		}, nil
	})
	p, err := NewPlanner(provider, logger.NopLogger{})
	require.NoError(t, err)
	res, err := p.Plan(context.Background(), Home, Work)
	require.NoError(t, err)
	for _, r := range res {
		assert.Equal(t, time.Duration(int(r.Mode)+1)*time.Minute, r.Duration)
	}
}

func TestPlanAbortsOnProviderError(t *testing.T) {
	boom := errors.New("no route")
	var calls []model.Mode
	provider := route.ProviderFunc(func(_ context.Context, _, _ string, mode model.Mode) (model.Measurement, error) {
		calls = append(calls, mode)
		if mode == model.ModeBus {
			return model.Measurement{}, boom
		}
		return model.Measurement{DistanceMeters: 1000}, nil
	})
	p, err := NewPlanner(provider, logger.NopLogger{})
	require.NoError(t, err)

	res, err := p.Plan(context.Background(), Home, Work)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "measure BUS route")
	assert.Equal(t, []model.Mode{model.ModeBike, model.ModeBus}, calls)
}

func TestPlanZeroBaseline(t *testing.T) {
	d := 0.0
	p, err := NewPlanner(route.NewConstant(route.ConstantConfig{DistanceMeters: &d}), logger.NopLogger{})
	require.NoError(t, err)
	_, err = p.Plan(context.Background(), Home, Work)
	assert.ErrorIs(t, err, ErrZeroBaseline)

	zero := route.ProviderFunc(func(context.Context, string, string, model.Mode) (model.Measurement, error) {
		return model.Measurement{}, nil
	})
	p, err = NewPlanner(zero, logger.NopLogger{})
	require.NoError(t, err)
	_, err = p.Plan(context.Background(), Home, Work)
	assert.ErrorIs(t, err, ErrZeroBaseline)
}

func TestNewPlannerValidation(t *testing.T) {
	_, err := NewPlanner(nil, logger.NopLogger{})
	assert.Error(t, err)
	_, err = NewPlanner(route.NewConstant(route.ConstantConfig{}), nil)
	assert.Error(t, err)
}
