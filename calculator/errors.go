package calculator

import (
	"errors"
	"fmt"
)

// 错误类型
type Kind int

const (
	KindValidation    Kind = iota + 1 // 输入参数不合法，未进行计算
	KindNumericDomain                 // 除零、对非正数取对数或结果非有限值
	KindProgramming                   // 其他意外错误
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNumericDomain:
		return "numeric_domain"
	case KindProgramming:
		return "programming"
	default:
		return "unknown"
	}
}

var (
	ErrValidation    = errors.New("calculator: invalid simulation parameters")
	ErrNumericDomain = errors.New("calculator: numeric domain error")
	ErrProgramming   = errors.New("calculator: unexpected failure")
)

// Error 计算失败时返回，Reason 为可读的失败原因
type Error struct {
	Kind   Kind
	Op     string
	Reason string
	// 出错的计算点下标，-1 表示与具体计算点无关
	Index int
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (point %d): %s", e.Kind, e.Op, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Reason)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNumericDomain:
		return e.Kind == KindNumericDomain
	case ErrProgramming:
		return e.Kind == KindProgramming
	}
	return false
}

func validationError(op, reason string) *Error {
	return &Error{Kind: KindValidation, Op: op, Reason: reason, Index: -1}
}

func domainError(op string, index int, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNumericDomain, Op: op, Reason: fmt.Sprintf(format, args...), Index: index}
}

func programmingError(op string, r interface{}) *Error {
	return &Error{Kind: KindProgramming, Op: op, Reason: fmt.Sprint(r), Index: -1}
}

// KindOf 返回错误类型，非本包错误视为 KindProgramming
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProgramming
}
