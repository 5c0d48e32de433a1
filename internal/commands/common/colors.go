package common

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	Yellow         = "\x1b[93m"
	BackgroundBlue = "\x1b[44m"
)
