package bridge

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"rogchap.com/v8go"
)

// UndefinedT type of Undefined
type UndefinedT byte

// Undefined the JavaScript undefined value on the Go side
var Undefined UndefinedT = 0x00

// String undefined
func (u UndefinedT) String() string {
	return "undefined"
}

// GoValue cast JavasScript value to Golang value
//
// *  JavaScript -> Golang
// *  ---------------------------------------------------
// *  | JavaScript            | Golang                  |
// *  ---------------------------------------------------
// *  | null                  | nil                     |
// *  | undefined             | bridge.Undefined        |
// *  | boolean               | bool                    |
// *  | number(int32)         | int                     |
// *  | number                | float64                 |
// *  | bigint                | int64                   |
// *  | string                | string                  |
// *  | object                | map[string]interface{}  |
// *  | array                 | []interface{}           |
// *  ---------------------------------------------------
func GoValue(value *v8go.Value) (interface{}, error) {

	if value == nil || value.IsUndefined() {
		return Undefined, nil
	}

	if value.IsNull() {
		return nil, nil
	}

	if value.IsString() {
		return value.String(), nil
	}

	if value.IsBoolean() {
		return value.Boolean(), nil
	}

	if value.IsInt32() {
		return int(value.Int32()), nil
	}

	if value.IsNumber() {
		return value.Number(), nil
	}

	if value.IsBigInt() {
		return value.BigInt().Int64(), nil
	}

	if value.IsFunction() {
		return nil, fmt.Errorf("function values are not supported")
	}

	if value.IsArray() {
		var goValue []interface{}
		return goValueParse(value, goValue)
	}

	var goValue map[string]interface{}
	return goValueParse(value, goValue)
}

func goValueParse(value *v8go.Value, v interface{}) (interface{}, error) {

	data, err := value.MarshalJSON()
	if err != nil {
		return nil, err
	}

	ptr := &v
	err = jsoniter.Unmarshal(data, ptr)
	if err != nil {
		return nil, err
	}

	return *ptr, nil
}

// Stringify the console representation of a value: strings are kept as is,
// everything else goes through JSON.stringify
func Stringify(ctx *v8go.Context, value *v8go.Value) string {

	if value.IsString() {
		return value.String()
	}

	if value.IsUndefined() || value.IsFunction() || value.IsSymbol() {
		return value.String()
	}

	text, err := v8go.JSONStringify(ctx, value)
	if err != nil || text == "" {
		return value.String()
	}
	return text
}

// JsException throw a JavaScript error with the message
func JsException(ctx *v8go.Context, message interface{}) *v8go.Value {
	msg := fmt.Sprintf("%v", message)
	value, err := v8go.NewValue(ctx.Isolate(), msg)
	if err != nil {
		return v8go.Undefined(ctx.Isolate())
	}
	return ctx.Isolate().ThrowException(value)
}
