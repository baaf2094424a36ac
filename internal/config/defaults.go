package config

const (
	defaultWorkerBinary    = "ffmpeg"
	defaultWorkerLogLevel  = "warning"
	defaultQueueSize       = "1024"
	defaultRestartDelaySec = 0.5
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Worker: Worker{
			Binary:    defaultWorkerBinary,
			LogLevel:  defaultWorkerLogLevel,
			QueueSize: defaultQueueSize,
		},
		Supervisor: Supervisor{
			RestartDelay: defaultRestartDelaySec,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
