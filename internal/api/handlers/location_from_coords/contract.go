package location_from_coords

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
