// Package factory provides a small generic registry used to instantiate
// modules, such as route providers, from configuration. Modules are defined by
// a type string and a map of raw settings. Factories decode the settings into
// typed structs and return the concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[route.Provider]()
//	reg.Register("constant", func(conf map[string]any) (route.Provider, error) {
//	    var c route.ConstantConfig
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return route.NewConstant(c), nil
//	})
//	p, err := reg.Create(factory.ModuleConfig{Type: "constant", Conf: map[string]any{"distance_meters": 20000}})
package factory
