package errors

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

type _Stack []uintptr

var packageFuncPrefix = sync.OnceValue(func() string {
	return reflect.TypeOf(Error{}).PkgPath() + "."
})

func currStack() _Stack {
	stackPtrs := make(_Stack, 20)
	count := runtime.Callers(3, stackPtrs)
	return stackPtrs[0:count]
}

func (e *Error) writeSelfStacktrace(w io.Writer) error {
	if len(e.stack) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.stack)
	prefix := packageFuncPrefix()
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, prefix) {
			_, err := fmt.Fprintf(w, "%s\n\t%s:%d", f.Function, f.File, f.Line)
			if err != nil {
				return err
			}
			if more {
				if _, err := w.Write([]byte("\n")); err != nil {
					return err
				}
			}
		}
		if !more {
			break
		}
	}
	return nil
}

func writeWrappedStacktrace(err error, w io.Writer, indent string) error {
	if indent != "[" {
		indent += "."
	}
	for i, wErr := range UnwrapMulti(err) {
		curIndent := indent + strconv.Itoa(i+1)
		if _, err := w.Write([]byte("\n" + curIndent)); err != nil {
			return err
		}
		if libErr, is := wErr.(*Error); is {
			if _, err := w.Write([]byte("] wrapped stacktrace:\n")); err != nil {
				return err
			}
			if err := libErr.writeSelfStacktrace(w); err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(w, "] wrapped stacktrace not available for error type: %T", wErr)
			if err != nil {
				return err
			}
		}
		if err := writeWrappedStacktrace(wErr, w, curIndent); err != nil {
			return err
		}
	}

	return nil
}
