// randvec prints the sequence a seeded generator produces for one operation,
// either as plain text or as a Go composite literal ready to paste into a
// regression fixture.
//
// Every flag can also be set through the environment, e.g. RANDVEC_SEED=42.
package main

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/alaingilbert/javarand"
	"github.com/alaingilbert/javarand/internal/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type emitFn func(r *javarand.Rand, n int) []string

// each lifts a single-value formatter into an emitFn.
func each(f func(r *javarand.Rand) string) emitFn {
	return func(r *javarand.Rand, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = f(r)
		}
		return out
	}
}

var ops = map[string]emitFn{
	"u32":  each(func(r *javarand.Rand) string { return fmt.Sprintf("0x%08x", r.Uint32()) }),
	"i32":  each(func(r *javarand.Rand) string { return fmt.Sprintf("%d", r.Int32()) }),
	"u64":  each(func(r *javarand.Rand) string { return fmt.Sprintf("0x%016x", r.Uint64()) }),
	"i64":  each(func(r *javarand.Rand) string { return fmt.Sprintf("%d", r.Int64()) }),
	"bool": each(func(r *javarand.Rand) string { return fmt.Sprintf("%t", r.Bool()) }),
	"f32bits": each(func(r *javarand.Rand) string {
		return fmt.Sprintf("0x%08x", math.Float32bits(r.Float32()))
	}),
	"f64bits": each(func(r *javarand.Rand) string {
		return fmt.Sprintf("0x%016x", math.Float64bits(r.Float64()))
	}),
	"gauss": each(func(r *javarand.Rand) string { return fmt.Sprintf("%v", r.NormFloat64()) }),
	"gaussbits": each(func(r *javarand.Rand) string {
		return fmt.Sprintf("0x%016x", math.Float64bits(r.NormFloat64()))
	}),
	"bound": each(func(r *javarand.Rand) string {
		return fmt.Sprintf("%d", r.Int32N(viper.GetInt32("bound")))
	}),
	"uuid": each(func(r *javarand.Rand) string { return r.UUID().String() }),
	"ulid": each(func(r *javarand.Rand) string {
		ms := viper.GetInt64("ms")
		return r.ULID(utils.Ternary(ms == 0, time.Now(), time.UnixMilli(ms))).String()
	}),
	"bytes": func(r *javarand.Rand, n int) []string {
		p := make([]byte, n)
		r.Fill(p)
		out := make([]string, len(p))
		for i, b := range p {
			out[i] = fmt.Sprintf("0x%02x", b)
		}
		return out
	},
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func render(values []string, format string) string {
	goFmt := format == "go"
	var b strings.Builder
	for i, v := range values {
		b.WriteString(v)
		b.WriteString(utils.TernaryOrZero(i < len(values)-1, utils.Ternary(goFmt, ", ", "\n")))
	}
	return utils.Ternary(goFmt, "{"+b.String()+"}", b.String())
}

func main() {
	pflag.Int64("seed", 0, "generator seed")
	pflag.String("op", "u32", "sequence to emit, one of "+strings.Join(opNames(), "|"))
	pflag.Int("n", 16, "how many values to emit")
	pflag.Int32("bound", 10, "bound for op=bound")
	pflag.Int64("ms", 0, "unix milliseconds for op=ulid, 0 means now")
	pflag.String("format", "text", "output format, text|go")
	pflag.Parse()

	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	viper.SetEnvPrefix("randvec")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		logger.Fatalf("cannot bind flags: %s", err)
	}

	op := viper.GetString("op")
	seed := viper.GetInt64("seed")
	n := viper.GetInt("n")

	emit, ok := ops[op]
	if !ok {
		logger.Fatalf("unknown op %q, expected one of %s", op, strings.Join(opNames(), "|"))
	}

	logger.Infof("emitting %d %s values for seed %d", n, op, seed)
	fmt.Println(render(emit(javarand.New(seed), n), viper.GetString("format")))
}
