package apsp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/apsp/apsp"
)

// BenchmarkEngines measures Floyd and Dantzig on dense random graphs with
// negative edges (no negative cycles), plus the corrector on its own.
func BenchmarkEngines(b *testing.B) {
	for _, n := range []int{32, 128, 256} {
		d0 := randomPotential(b, rand.New(rand.NewSource(int64(n))), n, 0.3)

		for _, e := range engines {
			b.Run(fmt.Sprintf("%s/n=%d", e.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := e.run(d0); err != nil {
						b.Fatal(err)
					}
				}
			})
		}

		res, err := apsp.Floyd(d0)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("NegativeLoopCheck/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := apsp.NegativeLoopCheck(res.Dist); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
