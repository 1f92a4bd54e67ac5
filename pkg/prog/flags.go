package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. It also provides flags shared by more than
// one subprogram, which are registered the first time they are requested.
type FlagSet struct {
	*flag.FlagSet
	json   *bool
	config *string
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo, -version or -tree in JSON")
		fs.json = &json
	}
	return fs.json
}

// Config returns a pointer to the value of the -config flag.
func (fs *FlagSet) Config() *string {
	if fs.config == nil {
		var config string
		fs.StringVar(&config, "config", "",
			"a YAML file selecting extensions and their options")
		fs.config = &config
	}
	return fs.config
}
