package field

// Kind is the value kind a descriptor validates.
type Kind uint8

const (
	KindNumber Kind = iota + 1
	KindString
	KindBoolean
	KindEmail
	KindToken
	KindEnum
	KindUUID
	KindURL
	KindDate
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindEmail:
		return "email"
	case KindToken:
		return "token"
	case KindEnum:
		return "enum"
	case KindUUID:
		return "uuid"
	case KindURL:
		return "url"
	case KindDate:
		return "date"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func (k Kind) valid() bool { return k >= KindNumber && k <= KindObject }

// stringy reports kinds whose values are strings on the wire.
func (k Kind) stringy() bool {
	switch k {
	case KindString, KindEmail, KindToken, KindEnum, KindUUID, KindURL:
		return true
	}
	return false
}
