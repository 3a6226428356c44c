package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value", func() {
	Describe("ParseValue", func() {
		DescribeTable("int literals",
			func(raw string, want int64) {
				v, err := ParseValue(KindInt, raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(v.Kind()).To(Equal(KindInt))
				Expect(v.AsInt()).To(Equal(want))
			},
			Entry("decimal", "42", int64(42)),
			Entry("negative", "-7", int64(-7)),
			Entry("plus sign", "+3", int64(3)),
			Entry("leading zero", "010", int64(10)),
			Entry("hex", "0x1F", int64(31)),
			Entry("negative hex", "-0x10", int64(-16)),
			Entry("octal", "0o17", int64(15)),
		)

		DescribeTable("rejected literals",
			func(kind ValueKind, raw string) {
				_, err := ParseValue(kind, raw)
				Expect(CodeOf(err)).To(Equal(InvalidSourceStructure))
			},
			Entry("empty int", KindInt, ""),
			Entry("underscore", KindInt, "1_0"),
			Entry("double sign", KindInt, "--1"),
			Entry("word", KindInt, "ten"),
			Entry("upper-case bool", KindBool, "True"),
			Entry("nil text", KindNil, "null"),
		)

		It("should keep string literals verbatim", func() {
			v, err := ParseValue(KindString, `a\032b`)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.AsString()).To(Equal(`a\032b`))
		})
	})

	Describe("formatting", func() {
		It("should print values the way WRITE does", func() {
			Expect(Int(-5).String()).To(Equal("-5"))
			Expect(Bool(true).String()).To(Equal("true"))
			Expect(Str("hi").String()).To(Equal("hi"))
			Expect(Nil().String()).To(Equal(""))
		})

		It("should print values with their type", func() {
			Expect(Int(5).GoString()).To(Equal("int@5"))
			Expect(Nil().GoString()).To(Equal("nil@nil"))
			Expect(Value{}.GoString()).To(Equal("<undefined>"))
			Expect(Value{}.TypeName()).To(Equal(""))
		})

		It("should count characters, not bytes", func() {
			Expect(Str("žluťoučký").Len()).To(Equal(9))
		})
	})

	Describe("Equal", func() {
		It("should compare like-typed values", func() {
			Expect(Int(1).Equal(Int(1))).To(BeTrue())
			Expect(Str("a").Equal(Str("b"))).To(BeFalse())
			Expect(Nil().Equal(Nil())).To(BeTrue())
		})

		It("should allow nil against anything", func() {
			Expect(Nil().Equal(Int(0))).To(BeFalse())
			Expect(Str("").Equal(Nil())).To(BeFalse())
		})

		It("should reject mixed types", func() {
			_, err := Int(1).Equal(Str("1"))
			Expect(CodeOf(err)).To(Equal(OperandTypeError))
		})
	})

	Describe("Compare", func() {
		It("should order ints, bools and strings", func() {
			Expect(Compare(Int(-1), Int(2))).To(Equal(-1))
			Expect(Compare(Bool(true), Bool(false))).To(Equal(1))
			Expect(Compare(Str("abc"), Str("abd"))).To(Equal(-1))
			Expect(Compare(Str("x"), Str("x"))).To(Equal(0))
		})

		It("should reject nil", func() {
			_, err := Compare(Nil(), Nil())
			Expect(CodeOf(err)).To(Equal(OperandTypeError))
		})

		It("should reject mixed types", func() {
			_, err := Compare(Bool(true), Int(1))
			Expect(CodeOf(err)).To(Equal(OperandTypeError))
		})
	})
})

var _ = Describe("Error", func() {
	It("should include the trapping instruction", func() {
		err := trapAt(Errorf(ValueError, "x"), 4, Inst{Op: OpPopS, Order: 12})

		Expect(err.Error()).To(Equal("missing value: x (POPS, order 12)"))
		Expect(CodeOf(err)).To(Equal(ValueError))
	})

	It("should treat foreign errors as internal", func() {
		Expect(CodeOf(errString("boom"))).To(Equal(InternalError))
		Expect(CodeOf(nil)).To(Equal(OK))
	})
})

type errString string

func (e errString) Error() string { return string(e) }
