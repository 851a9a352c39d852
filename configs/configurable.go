package configs

// Configurable marks scope-provided values that can be overridden from
// config files. ConfigExpr names the value in config sources.
type Configurable interface {
	ConfigExpr() string
}
