package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Validator returns the process-wide validator; it caches struct metadata
// so it has to be shared.
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()
	})
	return v
}

func Struct(s interface{}) error {
	return Validator().Struct(s)
}
