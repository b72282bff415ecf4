package app

const (
	Name           = "anchortip"
	ConfigFilename = "config.json"
	LogFilename    = "demo.log"
)
