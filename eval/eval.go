package eval

// ErrorMsg is shown instead of a result when evaluation fails.
const ErrorMsg = "ERROR"

// Eval parses and evaluates an arithmetic expression.
func Eval(expression string) (Value, error) {
	ex, err := parse(expression)
	if err != nil {
		return Value{}, err
	}
	return ex.eval()
}

// Evaluate returns the decimal representation of expression's value, or
// ErrorMsg if it cannot be parsed or evaluated.
func Evaluate(expression string) string {
	v, err := Eval(expression)
	if err != nil {
		return ErrorMsg
	}
	return v.String()
}
