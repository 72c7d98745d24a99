package strongconv

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/pflag"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

// flagValue implements pflag.Value over a strong type.
type flagValue[S any, PS strong.TextSetter[S]] struct {
	target *S
}

func (v flagValue[S, PS]) String() string {
	if v.target == nil {
		return ""
	}
	if s, ok := any(*v.target).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(*v.target)
}

func (v flagValue[S, PS]) Set(raw string) error {
	var parsed S
	if err := PS(&parsed).UnmarshalText([]byte(raw)); err != nil {
		return err
	}
	if fv, ok := any(parsed).(formatValidator); ok && !fv.IsValidFormat() {
		err := &validation.ValidationError{
			Field:   v.Type(),
			Message: "has an invalid format",
			Code:    validation.CodeFormat,
		}
		if !validation.IsPersonalData(parsed) {
			err.Value = raw
		}
		return err
	}
	*v.target = parsed
	return nil
}

// Type returns the lower-cased name of S, shown in usage text.
func (v flagValue[S, PS]) Type() string {
	return strings.ToLower(reflect.TypeFor[S]().Name())
}

// Value returns a pflag.Value that parses into target.
func Value[S any, PS strong.TextSetter[S]](target *S) pflag.Value {
	return flagValue[S, PS]{target: target}
}

// Var defines a flag that parses into target. The current value of target
// is the default.
func Var[S any, PS strong.TextSetter[S]](fs *pflag.FlagSet, target *S, name, usage string) {
	fs.Var(Value[S, PS](target), name, usage)
}

// VarP is like Var but accepts a shorthand letter.
func VarP[S any, PS strong.TextSetter[S]](fs *pflag.FlagSet, target *S, name, shorthand, usage string) {
	fs.VarP(Value[S, PS](target), name, shorthand, usage)
}

// Flag defines a flag with default value def and returns the address of
// the variable that stores it.
func Flag[S any, PS strong.TextSetter[S]](fs *pflag.FlagSet, name string, def S, usage string) *S {
	target := new(S)
	*target = def
	Var[S, PS](fs, target, name, usage)
	return target
}
