package cliutil

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/common"
)

var (
	addressType    = reflect.TypeOf(common.Address{})
	addressPtrType = reflect.TypeOf((*common.Address)(nil))
	bigIntType     = reflect.TypeOf((*big.Int)(nil))
)

// PopulateStruct fills the fields of cfg that carry a `cli:"flag-name"` tag.
// Unset flags leave address, big.Int and text fields untouched.
func PopulateStruct(cfg any, ctx *cli.Context) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config must be a pointer to struct")
	}
	v = v.Elem()
	for i := range v.NumField() {
		field := v.Type().Field(i)
		name := field.Tag.Get("cli")
		if name == "" || !v.Field(i).CanSet() {
			continue
		}
		if err := setField(v.Field(i), ctx, name); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}
	return nil
}

func setField(fv reflect.Value, ctx *cli.Context, name string) error {
	switch fv.Type() {
	case addressType, addressPtrType:
		if !ctx.IsSet(name) {
			return nil
		}
		addr, err := AddressFlag(ctx, name)
		if err != nil {
			return err
		}
		if fv.Type() == addressPtrType {
			fv.Set(reflect.ValueOf(&addr))
		} else {
			fv.Set(reflect.ValueOf(addr))
		}
		return nil
	case bigIntType:
		if !ctx.IsSet(name) {
			return nil
		}
		n, err := BigIntFlag(ctx, name)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(n))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(ctx.String(name))
		return nil
	case reflect.Bool:
		fv.SetBool(ctx.Bool(name))
		return nil
	case reflect.Uint64:
		fv.SetUint(ctx.Uint64(name))
		return nil
	case reflect.Int, reflect.Int64:
		fv.SetInt(ctx.Int64(name))
		return nil
	}

	if !ctx.IsSet(name) {
		return nil
	}
	if fv.Kind() == reflect.Ptr {
		elem := reflect.New(fv.Type().Elem())
		u, ok := elem.Interface().(encoding.TextUnmarshaler)
		if !ok {
			return fmt.Errorf("unsupported pointer type: %v", fv.Type())
		}
		if err := u.UnmarshalText([]byte(ctx.String(name))); err != nil {
			return err
		}
		fv.Set(elem)
		return nil
	}
	if u, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(ctx.String(name)))
	}
	return fmt.Errorf("unsupported type: %v", fv.Type())
}
