package config

// Configfile represents the structure of the config.yaml settings file.
// Unset fields keep their defaults.
type Configfile struct {
	Store           string   `yaml:"store"`
	TaskBinary      string   `yaml:"task_binary"`
	ReminderFilters []string `yaml:"reminder_filters"`
	DayStart        string   `yaml:"day_start"`
	DayEnd          string   `yaml:"day_end"`
	LatexIndent     *int     `yaml:"latex_indent"`
	LogFormat       string   `yaml:"log_format"`
}
