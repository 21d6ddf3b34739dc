package autosheet

// SUM: flatten → numeric coerce → sum; empty set ⇒ 0.
func biSUM(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	nums := toNumberArray(flattenArgs(args))
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum
}

// AVERAGE: flatten → numeric coerce → mean; empty set ⇒ 0.
func biAVERAGE(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	nums := toNumberArray(flattenArgs(args))
	if len(nums) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums))
}

// MIN: flatten → numeric coerce → extremum; empty set ⇒ 0.
func biMIN(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	nums := toNumberArray(flattenArgs(args))
	if len(nums) == 0 {
		return 0.0
	}
	min := nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
	}
	return min
}

// MAX: flatten → numeric coerce → extremum; empty set ⇒ 0.
func biMAX(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	nums := toNumberArray(flattenArgs(args))
	if len(nums) == 0 {
		return 0.0
	}
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return max
}

// COUNT: flatten → count of already-numeric values. Strings are not
// coerced here even though toNumberArray would parse them; the asymmetry
// with toNumberArray is deliberate.
func biCOUNT(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	count := 0.0
	for _, v := range flattenArgs(args) {
		if _, ok := v.(float64); ok {
			count++
		}
	}
	return count
}

// COUNTA: flatten → count of values that are not absent and not empty
// string.
func biCOUNTA(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	count := 0.0
	for _, v := range flattenArgs(args) {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		count++
	}
	return count
}
