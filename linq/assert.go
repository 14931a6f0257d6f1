package linq

import "github.com/kbukum/golinq/errors"

func requireSource(op string, isNil bool) {
	if isNil {
		panic(errors.NilSource(op))
	}
}

func requireFunc(op, what string, isNil bool) {
	if isNil {
		panic(errors.InvalidArgument(op, what+" must not be nil"))
	}
}

func requireValid(op string, valid bool) {
	if !valid {
		panic(errors.InvalidState(op, "cursor is not positioned on an element"))
	}
}
