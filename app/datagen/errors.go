package datagen

import "fmt"

// ConfigError reports a draw that cannot be satisfied: an inverted range,
// an empty choice set, or a without-replacement sample larger than its
// candidate list. Generation stops at the first one.
type ConfigError struct {
	Op     string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("datagen: %s: %s", e.Op, e.Detail)
}

func configErrorf(op, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// IntegrityError reports a foreign-key field that would reference a key
// missing from its source table. Builders run in dependency order, so this
// is a defensive guard; the test suite asserts it never fires.
type IntegrityError struct {
	Table string
	Field string
	Key   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("datagen: %s.%s references unknown key %q", e.Table, e.Field, e.Key)
}
