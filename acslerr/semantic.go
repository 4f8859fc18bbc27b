package acslerr

import "fmt"

// SemanticErrorKind categorizes semantic-analysis errors.
type SemanticErrorKind uint8

const (
	MultipleDefinition SemanticErrorKind = iota
	NoVertexMain
	NoFragmentMain
	UnknownType
	UnknownVariable
	UnknownFunction
	UnknownStructure
	InvalidParameterCount
	InvalidParameterType
	InvalidReturnType
	InvalidMemberType
	MissingStructureMember
	InvalidMember
	VertexMainParameterCount
	InvalidVertexMainParameterType
	InvalidVertexMainReturnType
	VertexMainReturnTypeMismatch
	FragmentMainParameterCount
	InvalidFragmentMainParameterType
	InvalidFragmentMainReturnType
	FragmentMainParameterTypeMismatch
	AllFieldsNeedSemantics
	SlotOutOfRange
	InvalidTextureType
	InvalidVariableName
	InvalidOperation
	VariableTypeMismatch
	// AssignmentToImmutable is a SPEC_FULL addition: the original
	// implementation recorded mutability but never enforced it.
	AssignmentToImmutable
	// InvalidTextureArgument is a SPEC_FULL addition: a texture-typed
	// builtin argument (sample_texture, load) must name a top-level
	// texture declaration directly, since the HLSL backend resolves a
	// texture's paired sampler register by that declared name alone.
	InvalidTextureArgument
)

var semanticErrorKindNames = [...]string{
	"MultipleDefinition",
	"NoVertexMain",
	"NoFragmentMain",
	"UnknownType",
	"UnknownVariable",
	"UnknownFunction",
	"UnknownStructure",
	"InvalidParameterCount",
	"InvalidParameterType",
	"InvalidReturnType",
	"InvalidMemberType",
	"MissingStructureMember",
	"InvalidMember",
	"VertexMainParameterCount",
	"InvalidVertexMainParameterType",
	"InvalidVertexMainReturnType",
	"VertexMainReturnTypeMismatch",
	"FragmentMainParameterCount",
	"InvalidFragmentMainParameterType",
	"InvalidFragmentMainReturnType",
	"FragmentMainParameterTypeMismatch",
	"AllFieldsNeedSemantics",
	"SlotOutOfRange",
	"InvalidTextureType",
	"InvalidVariableName",
	"InvalidOperation",
	"VariableTypeMismatch",
	"AssignmentToImmutable",
	"InvalidTextureArgument",
}

// String returns a human-readable kind name.
func (k SemanticErrorKind) String() string {
	if int(k) < len(semanticErrorKindNames) {
		return semanticErrorKindNames[k]
	}
	return "Unknown"
}

// SemanticError is a structured semantic-analysis error. Message carries a
// fully rendered, kind-specific description; Subject/Got/Want hold the raw
// values for callers that want to inspect them programmatically instead of
// parsing Message.
type SemanticError struct {
	Kind    SemanticErrorKind
	Message string
	Pos     Position
	Subject string
	Got     string
	Want    string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// New builds a SemanticError with a formatted message.
func New(kind SemanticErrorKind, pos Position, format string, args ...any) *SemanticError {
	return &SemanticError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewMultipleDefinition(name string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: MultipleDefinition, Pos: pos, Subject: name,
		Message: fmt.Sprintf("%q is already defined", name),
	}
}

func NewNoVertexMain() *SemanticError {
	return &SemanticError{Kind: NoVertexMain, Message: "no vertex_main function"}
}

func NewNoFragmentMain() *SemanticError {
	return &SemanticError{Kind: NoFragmentMain, Message: "no fragment_main function"}
}

func NewUnknownType(name string, pos Position) *SemanticError {
	return &SemanticError{Kind: UnknownType, Pos: pos, Subject: name, Message: fmt.Sprintf("unknown type %q", name)}
}

func NewUnknownVariable(name string, pos Position) *SemanticError {
	return &SemanticError{Kind: UnknownVariable, Pos: pos, Subject: name, Message: fmt.Sprintf("unknown variable %q", name)}
}

func NewUnknownFunction(name string, pos Position) *SemanticError {
	return &SemanticError{Kind: UnknownFunction, Pos: pos, Subject: name, Message: fmt.Sprintf("unknown function %q", name)}
}

func NewUnknownStructure(name string, pos Position) *SemanticError {
	return &SemanticError{Kind: UnknownStructure, Pos: pos, Subject: name, Message: fmt.Sprintf("unknown structure %q", name)}
}

func NewInvalidParameterCount(name string, got, want int, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidParameterCount, Pos: pos, Subject: name,
		Got: fmt.Sprint(got), Want: fmt.Sprint(want),
		Message: fmt.Sprintf("%q expects %d argument(s), got %d", name, want, got),
	}
}

func NewInvalidParameterType(name string, index int, got, want string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidParameterType, Pos: pos, Subject: name, Got: got, Want: want,
		Message: fmt.Sprintf("%q argument %d: expected %s, got %s", name, index, want, got),
	}
}

func NewInvalidReturnType(got, want string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidReturnType, Pos: pos, Got: got, Want: want,
		Message: fmt.Sprintf("expected return type %s, got %s", want, got),
	}
}

func NewInvalidMemberType(structName, member, got, want string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidMemberType, Pos: pos, Subject: member, Got: got, Want: want,
		Message: fmt.Sprintf("%s.%s: expected %s, got %s", structName, member, want, got),
	}
}

func NewMissingStructureMember(structName, member string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: MissingStructureMember, Pos: pos, Subject: member,
		Message: fmt.Sprintf("%s: missing initializer for member %q", structName, member),
	}
}

func NewInvalidMember(typeName, member string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidMember, Pos: pos, Subject: member,
		Message: fmt.Sprintf("%s has no member %q", typeName, member),
	}
}

func NewVertexMainParameterCount(pos Position) *SemanticError {
	return &SemanticError{Kind: VertexMainParameterCount, Pos: pos, Message: "vertex_main must take exactly one parameter"}
}

func NewInvalidVertexMainParameterType(got string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidVertexMainParameterType, Pos: pos, Got: got,
		Message: fmt.Sprintf("vertex_main parameter must be a struct, got %s", got),
	}
}

func NewInvalidVertexMainReturnType(got string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidVertexMainReturnType, Pos: pos, Got: got,
		Message: fmt.Sprintf("vertex_main return type must be a struct, got %s", got),
	}
}

func NewVertexMainReturnTypeMismatch(got, want string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: VertexMainReturnTypeMismatch, Pos: pos, Got: got, Want: want,
		Message: fmt.Sprintf("vertex_main must return %s, got %s", want, got),
	}
}

func NewFragmentMainParameterCount(pos Position) *SemanticError {
	return &SemanticError{Kind: FragmentMainParameterCount, Pos: pos, Message: "fragment_main must take exactly one parameter"}
}

func NewInvalidFragmentMainParameterType(got string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidFragmentMainParameterType, Pos: pos, Got: got,
		Message: fmt.Sprintf("fragment_main parameter must be a struct, got %s", got),
	}
}

func NewInvalidFragmentMainReturnType(got string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidFragmentMainReturnType, Pos: pos, Got: got,
		Message: fmt.Sprintf("fragment_main must return float4, got %s", got),
	}
}

func NewFragmentMainParameterTypeMismatch(got, want string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: FragmentMainParameterTypeMismatch, Pos: pos, Got: got, Want: want,
		Message: fmt.Sprintf("fragment_main parameter must be %s, got %s", want, got),
	}
}

func NewAllFieldsNeedSemantics(structName string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: AllFieldsNeedSemantics, Pos: pos, Subject: structName,
		Message: fmt.Sprintf("%s: either all members or no members may carry a semantic", structName),
	}
}

func NewSlotOutOfRange(kind string, got, capacity int, pos Position) *SemanticError {
	return &SemanticError{
		Kind: SlotOutOfRange, Pos: pos, Subject: kind, Got: fmt.Sprint(got), Want: fmt.Sprintf("< %d", capacity),
		Message: fmt.Sprintf("%s slot %d is out of range (must be < %d)", kind, got, capacity),
	}
}

func NewInvalidTextureType(got string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidTextureType, Pos: pos, Got: got,
		Message: fmt.Sprintf("texture element type must be float, float vector, or uint, got %s", got),
	}
}

func NewInvalidVariableName(name string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidVariableName, Pos: pos, Subject: name,
		Message: fmt.Sprintf("%q uses a reserved prefix", name),
	}
}

func NewInvalidOperation(left, op, right string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidOperation, Pos: pos, Got: left, Want: right,
		Message: fmt.Sprintf("invalid operation: %s %s %s", left, op, right),
	}
}

func NewVariableTypeMismatch(name, got, want string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: VariableTypeMismatch, Pos: pos, Subject: name, Got: got, Want: want,
		Message: fmt.Sprintf("%s: expected %s, got %s", name, want, got),
	}
}

func NewAssignmentToImmutable(name string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: AssignmentToImmutable, Pos: pos, Subject: name,
		Message: fmt.Sprintf("cannot assign to immutable variable %q", name),
	}
}

func NewInvalidTextureArgument(function string, pos Position) *SemanticError {
	return &SemanticError{
		Kind: InvalidTextureArgument, Pos: pos, Subject: function,
		Message: fmt.Sprintf("argument to %q must directly name a texture declaration", function),
	}
}
