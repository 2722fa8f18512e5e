package i

// Logger is the leveled logger used by the simulation and its runner.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
