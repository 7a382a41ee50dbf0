package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Classroom ClassroomConfig `mapstructure:"classroom"`
}

// LogConfig contains the logging settings for the console echo and the
// append-only log file.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File is the path of the append-only audit log.
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ClassroomConfig contains settings that change domain behaviour.
type ClassroomConfig struct {
	// DedupeAssignments makes scheduling identical details twice a no-op.
	DedupeAssignments bool `mapstructure:"dedupe_assignments"`
}
