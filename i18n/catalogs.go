package i18n

var english = NewCatalog("en", "each value in ", map[string]string{
	"required":    "{property} should not be empty",
	"invalidType": "{property} has an invalid type",
	"unknownKey":  "property {property} should not exist",
	"isNumber":    "{each}{property} must be a number conforming to the specified constraints",
	"isInt":       "{each}{property} must be an integer number",
	"min":         "{each}{property} must not be less than {min}",
	"max":         "{each}{property} must not be greater than {max}",
	"isPositive":  "{each}{property} must be a positive number",
	"isString":    "{each}{property} must be a string",
	"isNotEmpty":  "{each}{property} should not be empty",
	"minLength":   "{each}{property} must be longer than or equal to {min} characters",
	"maxLength":   "{each}{property} must be shorter than or equal to {max} characters",
	"isBoolean":   "{each}{property} must be a boolean value",
	"isEmail":     "{each}{property} must be an email",
	"isJWT":       "{each}{property} must be a jwt string",
	"isEnum":      "{each}{property} must be one of the following values: {values}",
	"isUUID":      "{each}{property} must be a UUID",
	"isUUIDv":     "{each}{property} must be a UUID (version {version})",
	"isUrl":       "{each}{property} must be a URL address",
	"isDate":      "{each}{property} must be a Date instance",
	"isObject":    "{each}{property} must be an object",
	"isArray":     "{property} must be an array",
	"isMs":        "{each}{property} must be a positive integer representing milliseconds",
	"isPassword":  "{each}{property} is invalid",
	"parseError":  "{property} could not be parsed",
}, nil)

var vietnamese = NewCatalog("vi", "mỗi giá trị trong ", map[string]string{
	"required":    "{property} không được để trống",
	"invalidType": "{property} có kiểu không hợp lệ",
	"unknownKey":  "thuộc tính {property} không được phép tồn tại",
	"isNumber":    "{each}{property} phải là một số",
	"isInt":       "{each}{property} phải là số nguyên",
	"min":         "{each}{property} không được nhỏ hơn {min}",
	"max":         "{each}{property} không được lớn hơn {max}",
	"isPositive":  "{each}{property} phải là số dương",
	"isString":    "{each}{property} phải là chuỗi",
	"isNotEmpty":  "{each}{property} không được để trống",
	"minLength":   "{each}{property} phải dài ít nhất {min} ký tự",
	"maxLength":   "{each}{property} không được dài quá {max} ký tự",
	"isBoolean":   "{each}{property} phải là giá trị boolean",
	"isEmail":     "{each}{property} phải là email hợp lệ",
	"isJWT":       "{each}{property} phải là chuỗi jwt",
	"isEnum":      "{each}{property} phải là một trong các giá trị: {values}",
	"isUUID":      "{each}{property} phải là UUID",
	"isUUIDv":     "{each}{property} phải là UUID (phiên bản {version})",
	"isUrl":       "{each}{property} phải là địa chỉ URL",
	"isDate":      "{each}{property} phải là ngày hợp lệ",
	"isObject":    "{each}{property} phải là đối tượng",
	"isArray":     "{property} phải là mảng",
	"isMs":        "{each}{property} phải là số nguyên dương biểu thị mili giây",
	"isPassword":  "{each}{property} không hợp lệ",
	"parseError":  "không thể phân tích {property}",
}, english)

// English returns the built-in English catalog.
func English() *Catalog { return english }

// Vietnamese returns the built-in Vietnamese catalog. Missing keys fall back
// to English.
func Vietnamese() *Catalog { return vietnamese }

// Default returns the catalog used when none is configured (English).
func Default() *Catalog { return english }
