// Package strongconv adapts strong types to configuration and flag
// libraries: mapstructure (and so viper) decoding and pflag values.
package strongconv

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var (
	wrapperType         = reflect.TypeFor[strong.Wrapper]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	timeType            = reflect.TypeFor[time.Time]()
	durationType        = reflect.TypeFor[time.Duration]()
)

type formatValidator interface {
	IsValidFormat() bool
}

// DecodeHook converts raw configuration values (strings, numbers, booleans,
// times and durations) into strong types. Targets that have an
// IsValidFormat method are validated and rejected with a
// validation.ValidationError.
//
//	viper.Unmarshal(&cfg, viper.DecodeHook(strongconv.DecodeHook()))
func DecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		isPtr := t.Kind() == reflect.Ptr
		target := t
		if isPtr {
			target = t.Elem()
		}
		if !target.Implements(wrapperType) || !reflect.PointerTo(target).Implements(textUnmarshalerType) {
			return data, nil
		}
		if f == target || f == reflect.PointerTo(target) {
			return data, nil
		}

		raw, ok := rawText(data)
		if !ok {
			return data, nil
		}
		v := reflect.New(target)
		if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("decode %s: %w", target.Name(), err)
		}
		if fv, ok := v.Elem().Interface().(formatValidator); ok && !fv.IsValidFormat() {
			verr := &validation.ValidationError{
				Field:   target.Name(),
				Message: "has an invalid format",
				Code:    validation.CodeFormat,
			}
			if !validation.IsPersonalData(fv) {
				verr.Value = raw
			}
			return nil, verr
		}
		if isPtr {
			return v.Interface(), nil
		}
		return v.Elem().Interface(), nil
	}
}

// rawText renders a decoded configuration value in the text form the
// strong types parse.
func rawText(data any) (string, bool) {
	if data == nil {
		return "", false
	}
	v := reflect.ValueOf(data)
	switch v.Type() {
	case timeType:
		return data.(time.Time).Format(time.RFC3339Nano), true
	case durationType:
		return strong.FormatISODuration(data.(time.Duration)), true
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	}
	return "", false
}
