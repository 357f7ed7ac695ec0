package field

// Typed helpers. Each panics on invalid options, which are programmer errors
// caught when the package holding the declaration is initialised.

func Number(o Options) Descriptor          { return MustBuild(KindNumber, o) }
func NumberOptional(o Options) Descriptor  { return Optional(Number(o)) }
func String(o Options) Descriptor          { return MustBuild(KindString, o) }
func StringOptional(o Options) Descriptor  { return Optional(String(o)) }
func Boolean(o Options) Descriptor         { return MustBuild(KindBoolean, o) }
func BooleanOptional(o Options) Descriptor { return Optional(Boolean(o)) }
func Email(o Options) Descriptor           { return MustBuild(KindEmail, o) }
func EmailOptional(o Options) Descriptor   { return Optional(Email(o)) }
func Token(o Options) Descriptor           { return MustBuild(KindToken, o) }
func TokenOptional(o Options) Descriptor   { return Optional(Token(o)) }
func UUID(o Options) Descriptor            { return MustBuild(KindUUID, o) }
func UUIDOptional(o Options) Descriptor    { return Optional(UUID(o)) }
func URL(o Options) Descriptor             { return MustBuild(KindURL, o) }
func URLOptional(o Options) Descriptor     { return Optional(URL(o)) }
func Date(o Options) Descriptor            { return MustBuild(KindDate, o) }
func DateOptional(o Options) Descriptor    { return Optional(Date(o)) }

// Enum declares a field restricted to values. name is the documentation
// name of the enum; "" falls back to UnknownEnumName.
func Enum(name string, values []string, o Options) Descriptor {
	o.EnumName, o.Values = name, values
	return MustBuild(KindEnum, o)
}

func EnumOptional(name string, values []string, o Options) Descriptor {
	return Optional(Enum(name, values, o))
}

// Object declares a nested object validated by s.
func Object(s ObjectSchema, o Options) Descriptor {
	o.Schema = s
	return MustBuild(KindObject, o)
}

func ObjectOptional(s ObjectSchema, o Options) Descriptor { return Optional(Object(s, o)) }
