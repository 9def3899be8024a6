package directions

// Response is the subset of the Directions API payload used to measure a
// route.
type Response struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

type Route struct {
	Summary string `json:"summary,omitempty"`
	Legs    []Leg  `json:"legs"`
}

type Leg struct {
	Distance     *Value `json:"distance"`
	Duration     *Value `json:"duration"`
	StartAddress string `json:"start_address,omitempty"`
	EndAddress   string `json:"end_address,omitempty"`
}

// Value is a measured quantity; Value is in meters or seconds and nil when
// the payload omits it.
type Value struct {
	Text  string `json:"text,omitempty"`
	Value *int   `json:"value"`
}

func (v *Value) present() bool { return v != nil && v.Value != nil }

// firstLeg returns the first leg of the first route, or nil when the payload
// has none.
func (r *Response) firstLeg() *Leg {
	if len(r.Routes) == 0 || len(r.Routes[0].Legs) == 0 {
		return nil
	}
	return &r.Routes[0].Legs[0]
}

// measured reports whether the leg carries both a distance and a duration
// value.
func (l *Leg) measured() bool {
	return l.Distance.present() && l.Duration.present()
}
