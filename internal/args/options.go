package args

type CallbackOption func(string) error

// DefaultEncoder is used when no encoder is given on the command line, in the environment or in the
// configuration file
const DefaultEncoder = "ChuckNorris"

// Options which may also come from the configuration file have no `default` tag: go-flags would put the
// default back over the value read from the file. Fallbacks are applied where the options are used.
var General struct {
	Verbose               []bool         `yaml:"verbose"            short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `yaml:"-"                  short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"log-file"           short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set or '-', logs go to stderr."`
	LogFormat             string         `yaml:"log-format"         short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text, default text)." choice:"text" choice:"json"`
	LogColor              string         `yaml:"log-color"          short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? yes, no, true, false or auto (default)" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto"`
	LogFullTimestamp      bool           `yaml:"log-full-timestamp"           long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"log-report-caller"            long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
}

// Codec selects and configures the encoder used by the encode, decode, inspect and shell commands.
var Codec struct {
	Encoder string `yaml:"encoder" short:"e" long:"encoder" env:"ENCODER" description:"Encoder to use, by name or one-letter code (ChuckNorris, Raw, Base32, Base64, Base91). Defaults to ChuckNorris."`
	Lenient bool   `yaml:"lenient"           long:"lenient" env:"LENIENT" description:"Only use the length of count tokens when decoding ChuckNorris streams"`
}
