package deck

import (
	"math/big"
	"math/rand"
	"time"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Source picks shuffle positions. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed number in [0, n).
	Intn(n int) int
}

// NewMathSource returns a math/rand source. A zero seed is replaced by the
// current time.
func NewMathSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type cryptoSource struct{}

// NewCryptoSource returns a source drawing from the Ed25519 suite random stream.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	return int(random.Int(big.NewInt(int64(n)), suite.RandomStream()).Int64())
}

// Shuffle performs passes full swap passes over the zone: every position is
// swapped with a uniformly chosen position of the whole zone. Zero passes
// leave the order untouched.
func (z *Zone) Shuffle(passes int, src Source) {
	n := len(z.cards)
	for p := 0; p < passes; p++ {
		for i := 0; i < n; i++ {
			j := src.Intn(n)
			z.cards[i], z.cards[j] = z.cards[j], z.cards[i]
		}
	}
}
