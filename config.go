package morphemize

import "github.com/spf13/viper"

// KeyFrequencyListPath is the preference key holding the filesystem
// path of the Vietnamese compound-word vocabulary file.
const KeyFrequencyListPath = "path_frequency"

// Preferences resolves configuration values for the package. It is a
// thin layer over viper: values can come from a morphemize.yaml config
// file in the search paths or be set programmatically.
type Preferences struct {
	v *viper.Viper
}

// NewPreferences creates a Preferences that reads morphemize.yaml from
// the working directory or ~/.config/morphemize if present. A missing
// or unreadable config file is not an error; lookups then simply
// return empty values until Set is called.
func NewPreferences() *Preferences {
	v := viper.New()
	v.SetConfigName("morphemize")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/morphemize")
	_ = v.ReadInConfig()
	return &Preferences{v: v}
}

// Get returns the string value for key, or "" when unset.
func (p *Preferences) Get(key string) string {
	if p == nil || p.v == nil {
		return ""
	}
	return p.v.GetString(key)
}

// Set overrides the value for key.
func (p *Preferences) Set(key string, value any) {
	if p == nil || p.v == nil {
		return
	}
	p.v.Set(key, value)
}

// FrequencyListPath returns the configured Vietnamese vocabulary path.
func (p *Preferences) FrequencyListPath() string {
	return p.Get(KeyFrequencyListPath)
}
