package bindings

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
)

// MethodTagName is the struct tag that names the solidity function behind a
// function field. The tag value is used to derive the selector.
const MethodTagName = "sol"

// Call is a contract call bound to its target. Calldata is encoded on demand.
type Call struct {
	Target     common.Address
	MethodName string
	Args       []any
}

func (c Call) To() common.Address {
	return c.Target
}

func (c Call) EncodeInput() ([]byte, error) {
	return ABIEncoder(c.MethodName, c.Args...)
}

var callType = reflect.TypeFor[Call]()

// CheckImpl verifies every function field of the binding struct has a `sol`
// tag and returns a Call. It panics otherwise: a malformed binding is a bug.
func CheckImpl(t reflect.Type) {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("expected struct, got %s", t))
	}
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		if field.Tag.Get(MethodTagName) == "" {
			panic(fmt.Sprintf("method %s must have a `%s` tag", field.Name, MethodTagName))
		}
		if field.Type.NumOut() != 1 || field.Type.Out(0) != callType {
			panic(fmt.Sprintf("method %s must return a single bindings.Call", field.Name))
		}
	}
}

// NewBindings returns a T whose tagged function fields build Calls against target.
func NewBindings[T any](target common.Address) T {
	var out T
	v := reflect.ValueOf(&out).Elem()
	CheckImpl(v.Type())
	for i := range v.NumField() {
		field := v.Type().Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		methodName := field.Tag.Get(MethodTagName)
		fn := reflect.MakeFunc(field.Type, func(args []reflect.Value) []reflect.Value {
			callArgs := make([]any, len(args))
			for j, a := range args {
				callArgs[j] = a.Interface()
			}
			return []reflect.Value{reflect.ValueOf(Call{
				Target:     target,
				MethodName: methodName,
				Args:       callArgs,
			})}
		})
		v.Field(i).Set(fn)
	}
	return out
}

// CustomTypeToGoType maps domain types onto the Go type the abi package packs.
func CustomTypeToGoType(typ reflect.Type) reflect.Type {
	if typ == reflect.TypeFor[eth.ETH]() {
		return bigIntPtrType
	}
	return typ
}

// CustomValueToABIValue converts a domain value into its abi packable form.
func CustomValueToABIValue(arg any) any {
	if v, ok := arg.(eth.ETH); ok {
		return v.ToBig()
	}
	return arg
}

// ABIEncoder encodes a call to the named function. The argument types define
// the signature, so they must match the deployed contract exactly.
func ABIEncoder(name string, args ...any) ([]byte, error) {
	inputs := make(abi.Arguments, len(args))
	packed := make([]any, len(args))
	for i, arg := range args {
		if arg == nil {
			return nil, fmt.Errorf("%s: argument %d is nil", name, i)
		}
		abiType, err := goTypeToABIType(CustomTypeToGoType(reflect.TypeOf(arg)))
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i, err)
		}
		inputs[i] = abi.Argument{Type: abiType}
		packed[i] = CustomValueToABIValue(arg)
	}
	method := abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, inputs, nil)
	encoded, err := method.Inputs.Pack(packed...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to pack arguments: %w", name, err)
	}
	return append(method.ID, encoded...), nil
}

// Signature returns the canonical signature, e.g. "approve(address,uint256)".
func Signature(name string, args ...any) (string, error) {
	inputs := make(abi.Arguments, len(args))
	for i, arg := range args {
		abiType, err := goTypeToABIType(CustomTypeToGoType(reflect.TypeOf(arg)))
		if err != nil {
			return "", fmt.Errorf("%s: argument %d: %w", name, i, err)
		}
		inputs[i] = abi.Argument{Type: abiType}
	}
	return abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, inputs, nil).Sig, nil
}
