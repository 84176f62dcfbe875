package algebra

// dEvaluator evaluates a gate's output in D-algebra mode, used by PODEM's
// implication pass. Unlike EvalBinary, this never sees a raw stimulus
// value: X is "currently unassigned", and D/D' are fault discrepancies
// injected by the caller after calling EvalD (see EvalD's doc comment).
type dEvaluator func(inputs []Value) Value

var dEvaluators = map[Kind]dEvaluator{
	KindAnd:    dEvalAnd,
	KindOr:     dEvalOr,
	KindNand:   func(in []Value) Value { return dNot(dEvalAnd(in)) },
	KindNor:    func(in []Value) Value { return dNot(dEvalOr(in)) },
	KindXor:    dEvalXor,
	KindXnor:   func(in []Value) Value { return dNot(dEvalXor(in)) },
	KindNot:    func(in []Value) Value { return dSingle(in, dNot) },
	KindBuf:    evalPassthrough,
	KindFanout: evalPassthrough,
}

// EvalD evaluates gate kind k over the current D-algebra outputs of its
// inputs. The result is the fault-free-consistent value *before* fault
// injection; a caller holding a faulty gate with fault_value=v must
// overwrite the result with D (v=0) or D' (v=1) whenever this function
// returns the opposite binary constant.
func EvalD(k Kind, inputs []Value) Value {
	fn, ok := dEvaluators[k]
	if !ok {
		return DontCare
	}
	return fn(inputs)
}

// InjectFault applies the post-evaluation fault-injection rule: if the
// gate is flagged faulty with the given stuck-at value and the computed
// output is the opposite constant, the line's true D-algebra value is the
// discrepancy D (stuck-at-0 site reading a good 1) or D' (stuck-at-1
// site reading a good 0).
func InjectFault(faultValue, computed Value) Value {
	switch {
	case faultValue == Zero && computed == One:
		return D
	case faultValue == One && computed == Zero:
		return DPrime
	default:
		return computed
	}
}

func dHasUZX(inputs []Value) (hasU, hasZ, hasX bool) {
	for _, v := range inputs {
		switch v {
		case Unknown:
			hasU = true
		case HiZ:
			hasZ = true
		case DontCare:
			hasX = true
		}
	}
	return
}

func dEvalAnd(inputs []Value) Value {
	hasU, hasZ, hasX := dHasUZX(inputs)
	if hasU || hasZ {
		return Unknown
	}
	if hasClean(inputs, Zero) {
		return Zero
	}
	if hasX {
		return DontCare
	}
	hasD := hasClean(inputs, D)
	hasDp := hasClean(inputs, DPrime)
	switch {
	case hasD && hasDp:
		return Zero
	case hasD && allIn(inputs, One, D):
		return D
	case hasDp && allIn(inputs, One, DPrime):
		return DPrime
	case allIn(inputs, One):
		return One
	default:
		return Unknown
	}
}

func dEvalOr(inputs []Value) Value {
	hasU, hasZ, hasX := dHasUZX(inputs)
	if hasU || hasZ {
		return Unknown
	}
	if hasClean(inputs, One) {
		return One
	}
	if hasX {
		return DontCare
	}
	hasD := hasClean(inputs, D)
	hasDp := hasClean(inputs, DPrime)
	switch {
	case hasD && hasDp:
		return One
	case hasD && allIn(inputs, Zero, D):
		return D
	case hasDp && allIn(inputs, Zero, DPrime):
		return DPrime
	case allIn(inputs, Zero):
		return Zero
	default:
		return Unknown
	}
}

func dEvalXor(inputs []Value) Value {
	hasU, hasZ, hasX := dHasUZX(inputs)
	if hasU || hasZ {
		return Unknown
	}
	if hasX {
		return DontCare
	}

	dCount, dpCount, oneCount := 0, 0, 0
	for _, v := range inputs {
		switch v {
		case D:
			dCount++
		case DPrime:
			dpCount++
		case One:
			oneCount++
		}
	}
	odd := oneCount%2 == 1

	switch {
	case dCount == 0 && dpCount == 0:
		return boolValue(odd)
	case dCount%2 == 1 && dpCount%2 == 0:
		if odd {
			return DPrime
		}
		return D
	case dCount%2 == 1 && dpCount%2 == 1:
		return boolValue(!odd)
	case dCount%2 == 0 && dpCount%2 == 1:
		if odd {
			return D
		}
		return DPrime
	default:
		return Zero
	}
}

func dNot(v Value) Value {
	switch v {
	case Unknown, HiZ:
		return Unknown
	case D:
		return DPrime
	case DPrime:
		return D
	case One:
		return Zero
	case Zero:
		return One
	default:
		return DontCare
	}
}

func dSingle(inputs []Value, f func(Value) Value) Value {
	if len(inputs) == 0 {
		return Unknown
	}
	return f(inputs[0])
}

func allIn(inputs []Value, allowed ...Value) bool {
	for _, v := range inputs {
		ok := false
		for _, a := range allowed {
			if v == a {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func boolValue(v bool) Value {
	if v {
		return One
	}
	return Zero
}
