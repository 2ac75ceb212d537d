package schema

import (
	"errors"

	"github.com/ezrec/smallreg/translate"
)

var f = translate.From

var (
	// Schema content errors
	ErrSchemaPackage          = errors.New(f("package name missing"))
	ErrSchemaEmpty            = errors.New(f("no registers declared"))
	ErrSchemaName             = errors.New(f("invalid name"))
	ErrSchemaDuplicate        = errors.New(f("name duplicated"))
	ErrSchemaWidth            = errors.New(f("width must be 8, 16, 32 or 64"))
	ErrSchemaRegister         = errors.New(f("register unknown"))
	ErrSchemaMap              = errors.New(f("map unknown"))
	ErrSchemaAddress          = errors.New(f("address exceeds address width"))
	ErrSchemaAddressDuplicate = errors.New(f("address duplicated"))

	// Schema file errors
	ErrSchemaFormat = errors.New(f("unknown schema format"))
	ErrSchemaKey    = errors.New(f("unknown key"))
	ErrSchemaSyntax = errors.New(f("syntax"))
)

// ErrAt locates a schema error.
type ErrAt struct {
	Where string
	Err   error
}

func (err *ErrAt) Error() string {
	return f("%v: %v", err.Where, err.Err)
}

func (err *ErrAt) Unwrap() error {
	return err.Err
}
