package core

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FrameStore", func() {
	var (
		s  *FrameStore
		gx VarRef
		tx VarRef
		lx VarRef
	)

	BeforeEach(func() {
		s = NewFrameStore()
		gx = VarRef{Scope: GlobalScope, Name: "x"}
		tx = VarRef{Scope: TempScope, Name: "x"}
		lx = VarRef{Scope: LocalScope, Name: "x"}
	})

	It("should declare undefined variables", func() {
		Expect(s.Declare(gx)).To(Succeed())

		_, err := s.Read(gx)
		Expect(CodeOf(err)).To(Equal(ValueError))

		Expect(s.Write(gx, Int(3))).To(Succeed())
		Expect(s.Read(gx)).To(Equal(Int(3)))
	})

	It("should refuse to declare twice", func() {
		Expect(s.Declare(gx)).To(Succeed())
		Expect(CodeOf(s.Declare(gx))).To(Equal(SemanticError))
	})

	It("should report undeclared variables", func() {
		_, err := s.Read(gx)
		Expect(CodeOf(err)).To(Equal(VariableAccessError))
		Expect(CodeOf(s.Write(gx, Int(1)))).To(Equal(VariableAccessError))
	})

	It("should report missing frames", func() {
		Expect(CodeOf(s.Declare(tx))).To(Equal(FrameAccessError))
		Expect(CodeOf(s.Declare(lx))).To(Equal(FrameAccessError))
		Expect(CodeOf(s.PushFrame())).To(Equal(FrameAccessError))
		Expect(CodeOf(s.PopFrame())).To(Equal(FrameAccessError))
	})

	It("should move frames between TF and LF", func() {
		s.CreateFrame()
		Expect(s.Declare(tx)).To(Succeed())
		Expect(s.Write(tx, Str("t"))).To(Succeed())

		Expect(s.PushFrame()).To(Succeed())
		Expect(s.Temp()).To(BeNil())
		Expect(s.LocalDepth()).To(Equal(1))
		Expect(s.Read(lx)).To(Equal(Str("t")))

		Expect(s.PopFrame()).To(Succeed())
		Expect(s.LocalDepth()).To(Equal(0))
		Expect(s.Read(tx)).To(Equal(Str("t")))
	})

	It("should discard the old TF on CREATEFRAME", func() {
		s.CreateFrame()
		Expect(s.Declare(tx)).To(Succeed())

		s.CreateFrame()
		_, err := s.Read(tx)
		Expect(CodeOf(err)).To(Equal(VariableAccessError))
	})

	It("should keep declaration order", func() {
		for _, name := range []string{"c", "a", "b"} {
			Expect(s.Declare(VarRef{Scope: GlobalScope, Name: name})).To(Succeed())
		}

		Expect(s.Global().Names()).To(Equal([]string{"c", "a", "b"}))
		Expect(s.Global().Len()).To(Equal(3))
	})
})

var _ = Describe("LineInput", func() {
	It("should read typed values line by line", func() {
		in := NewLineInput(strings.NewReader("12\r\nTrUe\nhello world\nnope\n"))

		Expect(readValue(in, KindInt)).To(Equal(Int(12)))
		Expect(readValue(in, KindBool)).To(Equal(Bool(true)))
		Expect(readValue(in, KindString)).To(Equal(Str("hello world")))
		Expect(readValue(in, KindBool)).To(Equal(Bool(false)))
		Expect(readValue(in, KindString).IsNil()).To(BeTrue())
	})

	It("should read lines longer than the default scanner buffer", func() {
		long := strings.Repeat("x", 70000)
		in := NewLineInput(strings.NewReader(long + "\nnext\n"))

		Expect(readValue(in, KindString)).To(Equal(Str(long)))
		Expect(readValue(in, KindString)).To(Equal(Str("next")))
		Expect(readValue(in, KindString).IsNil()).To(BeTrue())
	})

	It("should read a last line without a newline", func() {
		in := NewLineInput(strings.NewReader("7"))

		Expect(readValue(in, KindInt)).To(Equal(Int(7)))
		Expect(readValue(in, KindInt).IsNil()).To(BeTrue())
	})

	It("should yield nil for a malformed int", func() {
		in := NewLineInput(strings.NewReader("4x\n"))
		Expect(readValue(in, KindInt).IsNil()).To(BeTrue())
	})

	It("should yield nil without an input", func() {
		Expect(readValue(nil, KindString).IsNil()).To(BeTrue())
	})
})
