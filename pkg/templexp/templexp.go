package templexp

import (
	"fmt"
	"os"
	"strings"
)

// LookupFunc 查询变量值，第二个返回值表示变量是否已设置。
type LookupFunc func(name string) (string, bool)

// Expand 使用进程环境变量展开 text 中的 ${...} 表达式。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-word} / ${VAR-word} - 未设置 (或为空) 时使用 word
//   - ${VAR:+word} / ${VAR+word} - 已设置 (且非空) 时使用 word
//   - ${VAR:?msg} / ${VAR?msg} - 未设置 (或为空) 时返回错误
//   - ${VAR:=word} / ${VAR=word} - 同 :- / -，并将 word 赋给 VAR，仅在本次展开的后续部分可见
//   - $$ - 字面量 $
//
// word 可以嵌套 ${...}；无法识别的表达式保持原样。
func Expand(text string) (string, error) {
	return ExpandWith(text, os.LookupEnv)
}

// ExpandWith 与 [Expand] 相同，但使用 lookup 查询变量。
func ExpandWith(text string, lookup LookupFunc) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	e := &expander{lookup: lookup, assigned: map[string]string{}}

	return e.expand(text)
}

type expander struct {
	lookup   LookupFunc
	assigned map[string]string // ${VAR=word} 的赋值，不写回环境变量
}

func (e *expander) get(name string) (string, bool) {
	if val, ok := e.assigned[name]; ok {
		return val, true
	}

	return e.lookup(name)
}

func (e *expander) expand(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for len(text) > 0 {
		i := strings.IndexByte(text, '$')
		if i < 0 || i == len(text)-1 {
			b.WriteString(text)

			break
		}
		b.WriteString(text[:i])
		text = text[i:]

		switch text[1] {
		case '$':
			b.WriteByte('$')
			text = text[2:]

			continue
		case '{':
		default:
			b.WriteByte('$')
			text = text[1:]

			continue
		}

		end := closingBrace(text)
		if end < 0 {
			b.WriteString(text)

			break
		}

		out, err := e.expression(text[2:end])
		if err != nil {
			return "", err
		}
		if out.recognized {
			b.WriteString(out.value)
		} else {
			b.WriteString(text[:end+1])
		}
		text = text[end+1:]
	}

	return b.String(), nil
}

type result struct {
	value      string
	recognized bool
}

// expression 展开 ${ 与 } 之间的内容。
func (e *expander) expression(expr string) (result, error) {
	name := varName(expr)
	if name == "" {
		return result{}, nil
	}

	op, word := expr[len(name):], ""
	colon := strings.HasPrefix(op, ":")
	if colon {
		op = op[1:]
	}
	if op != "" {
		op, word = op[:1], op[1:]
	}

	val, set := e.get(name)
	// 带冒号的形式把空值视为未设置
	present := set && (!colon || val != "")

	switch op {
	case "":
		if colon {
			return result{}, nil
		}

		return result{value: val, recognized: true}, nil
	case "-":
		if present {
			return result{value: val, recognized: true}, nil
		}

		return e.word(word)
	case "=":
		if present {
			return result{value: val, recognized: true}, nil
		}
		out, err := e.word(word)
		if err != nil {
			return result{}, err
		}
		e.assigned[name] = out.value

		return out, nil
	case "+":
		if present {
			return e.word(word)
		}

		return result{recognized: true}, nil
	case "?":
		if present {
			return result{value: val, recognized: true}, nil
		}
		if word == "" {
			word = "parameter null or not set"
		}

		return result{}, fmt.Errorf("templexp: %s: %s", name, word)
	default:
		return result{}, nil
	}
}

func (e *expander) word(word string) (result, error) {
	out, err := e.expand(word)
	if err != nil {
		return result{}, err
	}

	return result{value: out, recognized: true}, nil
}

func varName(expr string) string {
	for i := range len(expr) {
		ch := expr[i]
		letter := ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
		digit := ch >= '0' && ch <= '9'
		if letter || (digit && i > 0) {
			continue
		}

		return expr[:i]
	}

	return expr
}

// closingBrace 返回与 text 开头 "${" 匹配的 "}" 下标，未闭合时返回 -1。
func closingBrace(text string) int {
	depth := 0
	for i := 2; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}
