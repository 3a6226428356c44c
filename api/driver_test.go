package api

import (
	"bufio"
	"bytes"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
)

const addProgram = `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@a</arg1></instruction>
  <instruction order="2" opcode="ADD">
    <arg1 type="var">GF@a</arg1>
    <arg2 type="int">3</arg2>
    <arg3 type="int">5</arg3>
  </instruction>
  <instruction order="3" opcode="WRITE"><arg1 type="var">GF@a</arg1></instruction>
</program>
`

var _ = Describe("Driver", func() {
	var (
		mockCtrl    *gomock.Controller
		mockMachine *Mockmachine
		out         bytes.Buffer
		diag        bytes.Buffer
		driver      *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockMachine = NewMockmachine(mockCtrl)

		out.Reset()
		diag.Reset()
		driver = newDriver("driver", mockMachine, bufio.NewWriter(&out), &diag, nil)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should map the validated program", func() {
		mockMachine.EXPECT().
			MapProgram(gomock.Any()).
			DoAndReturn(func(prog core.Program) error {
				Expect(prog).To(HaveLen(3))
				Expect(prog[1].Op).To(Equal(core.OpAdd))
				Expect(prog[1].Args[2].Const.AsInt()).To(Equal(int64(5)))
				return nil
			})

		err := driver.LoadProgram(strings.NewReader(addProgram), program.FormatXML)

		Expect(err).NotTo(HaveOccurred())
	})

	It("should return the exit code of the machine", func() {
		mockMachine.EXPECT().MapProgram(gomock.Any()).Return(nil)
		mockMachine.EXPECT().Run().Return(7, nil)
		mockMachine.EXPECT().Executed().Return(3)

		Expect(driver.LoadProgram(strings.NewReader(addProgram), program.FormatAuto)).To(Succeed())
		Expect(driver.Run()).To(Equal(7))
		Expect(diag.String()).To(BeEmpty())
	})

	It("should report a trap", func() {
		mockMachine.EXPECT().MapProgram(gomock.Any()).Return(nil)
		mockMachine.EXPECT().Run().
			Return(int(core.ValueError), core.Errorf(core.ValueError, "empty data stack"))

		Expect(driver.LoadProgram(strings.NewReader(addProgram), program.FormatXML)).To(Succeed())
		Expect(driver.Run()).To(Equal(56))
		Expect(diag.String()).To(HavePrefix("ERROR: missing value: empty data stack"))
	})

	It("should not map a program that fails to load", func() {
		err := driver.LoadProgram(strings.NewReader("<program"), program.FormatXML)

		Expect(core.CodeOf(err)).To(Equal(core.InvalidSourceFormat))
		Expect(driver.Run()).To(Equal(31))
		Expect(diag.String()).To(ContainSubstring("ERROR: invalid source format"))
	})

	It("should not map a program with a structure error", func() {
		src := `<program language="IPPcode24">
		  <instruction order="1" opcode="MOVE"><arg1 type="var">GF@a</arg1></instruction>
		</program>`

		err := driver.LoadProgram(strings.NewReader(src), program.FormatXML)

		Expect(core.CodeOf(err)).To(Equal(core.InvalidSourceStructure))
		Expect(driver.Run()).To(Equal(32))
	})

	It("should fail to run without a program", func() {
		Expect(driver.Run()).To(Equal(99))
	})

	It("should lint without mapping", func() {
		src := `<program language="IPPcode24">
		  <instruction order="1" opcode="JUMP"><arg1 type="label">nowhere</arg1></instruction>
		</program>`

		report, err := driver.Lint("jump.xml", strings.NewReader(src), program.FormatAuto)

		Expect(err).NotTo(HaveOccurred())
		Expect(report.FlowIssues).To(HaveLen(1))
		Expect(report.ExitCode()).To(Equal(core.OK))
	})

	It("should tag each driver with a run ID", func() {
		other := newDriver("other", mockMachine, bufio.NewWriter(&out), &diag, nil)

		Expect(driver.RunID()).NotTo(BeEmpty())
		Expect(driver.RunID()).NotTo(Equal(other.RunID()))
	})
})

var _ = Describe("DriverBuilder", func() {
	var (
		out  bytes.Buffer
		diag bytes.Buffer
	)

	BeforeEach(func() {
		out.Reset()
		diag.Reset()
	})

	build := func(input string) Driver {
		return MakeBuilder().
			WithOutput(&out).
			WithDiagnostics(&diag).
			WithInput(core.NewLineInput(strings.NewReader(input))).
			Build("Driver")
	}

	It("should run a program end to end", func() {
		d := build("")

		Expect(d.LoadProgram(strings.NewReader(addProgram), program.FormatAuto)).To(Succeed())
		Expect(d.Run()).To(Equal(0))
		Expect(out.String()).To(Equal("8"))
	})

	It("should flush output written before a trap", func() {
		src := `language: IPPcode24
instructions:
  - {order: 1, opcode: WRITE, args: [{type: string, value: "before"}]}
  - {order: 2, opcode: POPFRAME}
`
		d := build("")

		Expect(d.LoadProgram(strings.NewReader(src), program.FormatYAML)).To(Succeed())
		Expect(d.Run()).To(Equal(55))
		Expect(out.String()).To(Equal("before"))
		Expect(diag.String()).To(ContainSubstring("POPFRAME, order 2"))
	})

	It("should read input lines", func() {
		src := `language: IPPcode24
instructions:
  - order: 1
    opcode: DEFVAR
    args: [{type: var, value: GF@n}]
  - order: 2
    opcode: READ
    args: [{type: var, value: GF@n}, {type: type, value: int}]
  - order: 3
    opcode: MUL
    args: [{type: var, value: GF@n}, {type: var, value: GF@n}, {type: int, value: 2}]
  - order: 4
    opcode: WRITE
    args: [{type: var, value: GF@n}]
  - order: 5
    opcode: EXIT
    args: [{type: int, value: 3}]
`
		d := build("21\n")

		Expect(d.LoadProgram(strings.NewReader(src), program.FormatAuto)).To(Succeed())
		Expect(d.Run()).To(Equal(3))
		Expect(out.String()).To(Equal("42"))
	})

	It("should execute in ascending order regardless of listing", func() {
		src := `<program language="IPPcode24">
		  <instruction order="30" opcode="WRITE"><arg1 type="string">c</arg1></instruction>
		  <instruction order="2" opcode="WRITE"><arg1 type="string">a</arg1></instruction>
		  <instruction order="10" opcode="WRITE"><arg1 type="string">b</arg1></instruction>
		</program>`
		d := build("")

		Expect(d.LoadProgram(strings.NewReader(src), program.FormatXML)).To(Succeed())
		Expect(d.Run()).To(Equal(0))
		Expect(out.String()).To(Equal("abc"))
	})

	It("should fail on a duplicate label at load time", func() {
		src := `language: IPPcode24
instructions:
  - {order: 1, opcode: LABEL, args: [{type: label, value: l}]}
  - {order: 2, opcode: LABEL, args: [{type: label, value: l}]}
`
		d := build("")

		err := d.LoadProgram(strings.NewReader(src), program.FormatYAML)

		Expect(core.CodeOf(err)).To(Equal(core.SemanticError))
		Expect(d.Run()).To(Equal(52))
	})
})
