package optdoc

// Parse-time error caused by the supplied argument vector.
type userError struct {
	msg string
}

func (ue userError) Error() string {
	return ue.msg
}

// Declaration error raised while building a registry: duplicate identity,
// missing coercion path, bad separator.
type declError struct {
	msg string
}

func (de declError) Error() string {
	return de.msg
}
