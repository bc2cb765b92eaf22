package nd_test

import (
	"fmt"

	"github.com/limaJavier/ndsat/pkg/nd"
	"github.com/limaJavier/ndsat/pkg/sat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type binary func(a, b nd.Bool) (nd.Bool, error)

var connectives = map[string]struct {
	encode binary
	eval   func(x, y bool) bool
}{
	"and":       {nd.Bool.And, func(x, y bool) bool { return x && y }},
	"or":        {nd.Bool.Or, func(x, y bool) bool { return x || y }},
	"xor":       {nd.Bool.Xor, func(x, y bool) bool { return x != y }},
	"equal":     {nd.Bool.Equal, func(x, y bool) bool { return x == y }},
	"not equal": {nd.Bool.NotEqual, func(x, y bool) bool { return x != y }},
}

var _ = Describe("Bool", func() {
	for _, name := range sat.InProcessSolvers {
		Context(fmt.Sprintf("solved with %v", name), func() {
			var (
				m      *nd.Machine
				solver sat.SATSolver
			)

			BeforeEach(func() {
				var err error
				solver, err = sat.NewSolver(name)
				Expect(err).NotTo(HaveOccurred())
				m = nd.NewMachine()
			})

			fresh := func() nd.Bool {
				b, err := m.Fresh()
				Expect(err).NotTo(HaveOccurred())
				return b
			}
			constant := func(value bool) nd.Bool {
				var (
					b   nd.Bool
					err error
				)
				if value {
					b, err = m.True()
				} else {
					b, err = m.False()
				}
				Expect(err).NotTo(HaveOccurred())
				return b
			}
			apply := func(connective binary, a, b nd.Bool) nd.Bool {
				l, err := connective(a, b)
				Expect(err).NotTo(HaveOccurred())
				return l
			}
			value := func(b nd.Bool) bool {
				v, err := b.Value()
				Expect(err).NotTo(HaveOccurred())
				return v
			}
			solve := func() bool {
				solved, err := m.SolveWith(solver)
				Expect(err).NotTo(HaveOccurred())
				return solved
			}

			It("satisfies an empty formula", func() {
				Expect(solve()).To(BeTrue())
			})

			DescribeTable("follows the truth table",
				func(connective string, x, y bool) {
					c := connectives[connective]
					l := apply(c.encode, constant(x), constant(y))
					Expect(solve()).To(BeTrue())
					Expect(value(l)).To(Equal(c.eval(x, y)))
					Expect(value(l.Not())).To(Equal(!c.eval(x, y)))
				},
				func(connective string, x, y bool) string {
					return fmt.Sprintf("%v(%v, %v)", connective, x, y)
				},
				Entry(nil, "and", false, false), Entry(nil, "and", false, true), Entry(nil, "and", true, false), Entry(nil, "and", true, true),
				Entry(nil, "or", false, false), Entry(nil, "or", false, true), Entry(nil, "or", true, false), Entry(nil, "or", true, true),
				Entry(nil, "xor", false, false), Entry(nil, "xor", false, true), Entry(nil, "xor", true, false), Entry(nil, "xor", true, true),
				Entry(nil, "equal", false, false), Entry(nil, "equal", false, true), Entry(nil, "equal", true, false), Entry(nil, "equal", true, true),
				Entry(nil, "not equal", false, false), Entry(nil, "not equal", false, true), Entry(nil, "not equal", true, false), Entry(nil, "not equal", true, true),
			)

			It("forces both operands of an asserted conjunction", func() {
				b0, b1 := fresh(), fresh()
				Expect(nd.Assert(apply(nd.Bool.And, b0, b1))).To(Succeed())

				Expect(solve()).To(BeTrue())
				Expect(value(b0)).To(BeTrue())
				Expect(value(b1)).To(BeTrue())
			})

			It("forces one operand of an asserted disjunction", func() {
				b0, b1 := fresh(), fresh()
				Expect(nd.Assert(apply(nd.Bool.Or, b0, b1))).To(Succeed())

				Expect(solve()).To(BeTrue())
				Expect(value(b0) || value(b1)).To(BeTrue())
			})

			It("forces exactly one operand of an asserted exclusive disjunction", func() {
				b0, b1 := fresh(), fresh()
				Expect(nd.Assert(apply(nd.Bool.Xor, b0, b1))).To(Succeed())

				Expect(solve()).To(BeTrue())
				Expect(value(b0) != value(b1)).To(BeTrue())
			})

			It("makes a value equal to itself", func() {
				b0 := fresh()
				Expect(nd.AssertNotEqual(b0, b0)).To(Succeed())
				Expect(solve()).To(BeFalse())
			})

			DescribeTable("is commutative",
				func(connective string) {
					encode := connectives[connective].encode
					b0, b1 := fresh(), fresh()
					Expect(nd.AssertNotEqual(apply(encode, b0, b1), apply(encode, b1, b0))).To(Succeed())
					Expect(solve()).To(BeFalse())
				},
				Entry("and", "and"),
				Entry("or", "or"),
				Entry("xor", "xor"),
				Entry("equal", "equal"),
			)

			DescribeTable("is associative",
				func(connective string) {
					encode := connectives[connective].encode
					b0, b1, b2 := fresh(), fresh(), fresh()
					left := apply(encode, apply(encode, b0, b1), b2)
					right := apply(encode, b0, apply(encode, b1, b2))
					Expect(nd.AssertNotEqual(left, right)).To(Succeed())
					Expect(solve()).To(BeFalse())
				},
				Entry("and", "and"),
				Entry("or", "or"),
				Entry("xor", "xor"),
			)

			It("obeys De Morgan's laws", func() {
				b0, b1 := fresh(), fresh()
				left := apply(nd.Bool.And, b0, b1).Not()
				right := apply(nd.Bool.Or, b0.Not(), b1.Not())
				Expect(nd.AssertNotEqual(left, right)).To(Succeed())
				Expect(solve()).To(BeFalse())
			})

			It("drops the assignment after a mutation", func() {
				b0 := fresh()
				Expect(solve()).To(BeTrue())
				Expect(b0.Value()).Error().NotTo(HaveOccurred())

				fresh()

				Expect(b0.Value()).Error().To(MatchError(nd.ErrNoSolutionAvailable))
			})

			It("finds a consistent bit vector", func() {
				x, err := m.FreshBits(4)
				Expect(err).NotTo(HaveOccurred())
				y, err := m.FreshBits(4)
				Expect(err).NotTo(HaveOccurred())
				nine, err := m.ConstBits(9, 4)
				Expect(err).NotTo(HaveOccurred())

				Expect(nd.AssertEqual(x, y)).To(Succeed())
				Expect(nd.AssertEqual(y, nine)).To(Succeed())

				Expect(solve()).To(BeTrue())
				Expect(x.Value()).To(Equal(uint64(9)))
			})
		})
	}
})
