package bindings

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	bigIntType    = reflect.TypeFor[big.Int]()
	bigIntPtrType = reflect.TypeFor[*big.Int]()
)

// goTypeToABIType covers the static and dynamic types the bridge contracts use.
// Tuples are not supported.
func goTypeToABIType(typ reflect.Type) (abi.Type, error) {
	switch typ.Kind() {
	case reflect.Int, reflect.Uint:
		return abi.Type{}, fmt.Errorf("ints must have explicit size, type not valid: %s", typ)
	case reflect.Bool, reflect.String, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return abi.NewType(strings.ToLower(typ.Kind().String()), "", nil)
	case reflect.Array:
		if typ.Elem().Kind() != reflect.Uint8 {
			elem, err := goTypeToABIType(typ.Elem())
			if err != nil {
				return abi.Type{}, fmt.Errorf("unrecognized array-elem type: %w", err)
			}
			return abi.NewType(fmt.Sprintf("%s[%d]", elem, typ.Len()), "", nil)
		}
		if typ.Len() == 20 && typ.Name() == "Address" {
			return abi.NewType("address", "", nil)
		}
		if typ.Len() > 32 {
			return abi.Type{}, fmt.Errorf("byte array too large: %d", typ.Len())
		}
		return abi.NewType(fmt.Sprintf("bytes%d", typ.Len()), "", nil)
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return abi.NewType("bytes", "", nil)
		}
		elem, err := goTypeToABIType(typ.Elem())
		if err != nil {
			return abi.Type{}, fmt.Errorf("unrecognized slice-elem type: %w", err)
		}
		return abi.NewType(elem.String()+"[]", "", nil)
	case reflect.Struct:
		if typ.ConvertibleTo(bigIntType) {
			return abi.NewType("uint256", "", nil)
		}
		return abi.Type{}, fmt.Errorf("tuple types are not supported: %s", typ)
	case reflect.Pointer:
		return goTypeToABIType(typ.Elem())
	default:
		return abi.Type{}, fmt.Errorf("unrecognized typ: %s", typ)
	}
}
