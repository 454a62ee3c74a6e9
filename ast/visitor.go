package ast

// Visitor is the double-dispatch contract every pass (printer,
// optimizer, scope resolver) implements (spec §4.3). Every node variant
// has an Accept method invoking the matching Visit method here; a
// Visitor must provide an implementation for every variant.
//
// This is the one place DWScript's "visit via interface{switch}" idiom
// (seen in internal/ast's lack of Accept — the teacher walks its tree
// directly) is replaced wholesale: the spec makes Visitor a first-class
// external extension point for optimizer passes that are themselves out
// of this core's scope (spec §1).
type Visitor interface {
	VisitProgram(*Program) Node
	VisitIdentifier(*Identifier) Node
	VisitThisLiteral(*ThisLiteral) Node
	VisitConstantWrapper(*ConstantWrapper) Node
	VisitRegExpLiteral(*RegExpLiteral) Node

	VisitBinaryOperator(*BinaryOperator) Node
	VisitUnaryOperator(*UnaryOperator) Node
	VisitConditional(*Conditional) Node
	VisitGroupingOperator(*GroupingOperator) Node
	VisitCall(*Call) Node
	VisitMember(*Member) Node
	VisitArrayLiteral(*ArrayLiteral) Node
	VisitObjectLiteral(*ObjectLiteral) Node
	VisitObjectLiteralProperty(*ObjectLiteralProperty) Node
	VisitGetterSetter(*GetterSetter) Node
	VisitFunctionObject(*FunctionObject) Node
	VisitParameterDeclaration(*ParameterDeclaration) Node
	VisitAstNodeList(*AstNodeList) Node

	VisitBlock(*Block) Node
	VisitIf(*If) Node
	VisitFor(*For) Node
	VisitForIn(*ForIn) Node
	VisitWhile(*While) Node
	VisitDoWhile(*DoWhile) Node
	VisitSwitch(*Switch) Node
	VisitSwitchCase(*SwitchCase) Node
	VisitTry(*Try) Node
	VisitThrow(*Throw) Node
	VisitReturn(*Return) Node
	VisitBreak(*Break) Node
	VisitContinue(*Continue) Node
	VisitWith(*With) Node
	VisitLabeled(*Labeled) Node
	VisitDebugger(*Debugger) Node
	VisitEmpty(*Empty) Node
	VisitVar(*Var) Node
	VisitLexicalDeclaration(*LexicalDeclaration) Node
	VisitVariableDeclaration(*VariableDeclaration) Node
	VisitExpressionStatement(*ExpressionStatement) Node
	VisitDirectivePrologue(*DirectivePrologue) Node
	VisitImportantComment(*ImportantComment) Node
	VisitConditionalCompilation(*ConditionalCompilation) Node
	VisitASPNetBlock(*ASPNetBlock) Node
}

// BaseVisitor implements Visitor with identity traversal for every
// variant (return the node unchanged); embed it in a concrete visitor
// and override only the methods that need custom behavior, the way a
// partial interface implementation is typically built in Go.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program) Node                             { return n }
func (BaseVisitor) VisitIdentifier(n *Identifier) Node                       { return n }
func (BaseVisitor) VisitThisLiteral(n *ThisLiteral) Node                     { return n }
func (BaseVisitor) VisitConstantWrapper(n *ConstantWrapper) Node             { return n }
func (BaseVisitor) VisitRegExpLiteral(n *RegExpLiteral) Node                 { return n }
func (BaseVisitor) VisitBinaryOperator(n *BinaryOperator) Node               { return n }
func (BaseVisitor) VisitUnaryOperator(n *UnaryOperator) Node                 { return n }
func (BaseVisitor) VisitConditional(n *Conditional) Node                     { return n }
func (BaseVisitor) VisitGroupingOperator(n *GroupingOperator) Node           { return n }
func (BaseVisitor) VisitCall(n *Call) Node                                   { return n }
func (BaseVisitor) VisitMember(n *Member) Node                               { return n }
func (BaseVisitor) VisitArrayLiteral(n *ArrayLiteral) Node                   { return n }
func (BaseVisitor) VisitObjectLiteral(n *ObjectLiteral) Node                 { return n }
func (BaseVisitor) VisitObjectLiteralProperty(n *ObjectLiteralProperty) Node { return n }
func (BaseVisitor) VisitGetterSetter(n *GetterSetter) Node                   { return n }
func (BaseVisitor) VisitFunctionObject(n *FunctionObject) Node               { return n }
func (BaseVisitor) VisitParameterDeclaration(n *ParameterDeclaration) Node   { return n }
func (BaseVisitor) VisitAstNodeList(n *AstNodeList) Node                     { return n }
func (BaseVisitor) VisitBlock(n *Block) Node                                 { return n }
func (BaseVisitor) VisitIf(n *If) Node                                       { return n }
func (BaseVisitor) VisitFor(n *For) Node                                     { return n }
func (BaseVisitor) VisitForIn(n *ForIn) Node                                 { return n }
func (BaseVisitor) VisitWhile(n *While) Node                                 { return n }
func (BaseVisitor) VisitDoWhile(n *DoWhile) Node                             { return n }
func (BaseVisitor) VisitSwitch(n *Switch) Node                               { return n }
func (BaseVisitor) VisitSwitchCase(n *SwitchCase) Node                       { return n }
func (BaseVisitor) VisitTry(n *Try) Node                                     { return n }
func (BaseVisitor) VisitThrow(n *Throw) Node                                 { return n }
func (BaseVisitor) VisitReturn(n *Return) Node                               { return n }
func (BaseVisitor) VisitBreak(n *Break) Node                                 { return n }
func (BaseVisitor) VisitContinue(n *Continue) Node                           { return n }
func (BaseVisitor) VisitWith(n *With) Node                                   { return n }
func (BaseVisitor) VisitLabeled(n *Labeled) Node                             { return n }
func (BaseVisitor) VisitDebugger(n *Debugger) Node                           { return n }
func (BaseVisitor) VisitEmpty(n *Empty) Node                                 { return n }
func (BaseVisitor) VisitVar(n *Var) Node                                     { return n }
func (BaseVisitor) VisitLexicalDeclaration(n *LexicalDeclaration) Node       { return n }
func (BaseVisitor) VisitVariableDeclaration(n *VariableDeclaration) Node     { return n }
func (BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) Node     { return n }
func (BaseVisitor) VisitDirectivePrologue(n *DirectivePrologue) Node         { return n }
func (BaseVisitor) VisitImportantComment(n *ImportantComment) Node           { return n }
func (BaseVisitor) VisitConditionalCompilation(n *ConditionalCompilation) Node { return n }
func (BaseVisitor) VisitASPNetBlock(n *ASPNetBlock) Node                     { return n }
