// Command ffbench exercises ff128's L1-L3 operations end to end and renders
// an HTML op/s report via a single "run" subcommand.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/crypto/sha3"

	"ff128/array"
	"ff128/field"
	"ff128/flog"
	"ff128/measure"
	"ff128/measureutil"
	"ff128/poly"
	"ff128/prof"
	"ff128/wideint"
)

func usage() {
	fmt.Println(`usage: ffbench <run> [options]

Subcommands:
  run    Benchmark add/mul/inv/batch-inverse/fft across vector sizes and
         render an HTML op/s report.
         Flags:
           -sizes  <csv>     vector lengths, power-of-two (default: 16,64,256,1024,4096)
           -seed   <string>  SHAKE256 seed string for the benchmark vectors (default: ffbench)
           -out    <path>    HTML report path (default: ffbench_report.html)
           -config <path>    JSON config overriding the flags above
           -v                verbose: log per-size progress`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "run":
		runBench(os.Args[2:])
	default:
		usage()
	}
}

func runBench(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	sizesFlag := fs.String("sizes", "16,64,256,1024,4096", "comma-separated vector lengths")
	seedFlag := fs.String("seed", "ffbench", "seed string expanded via SHAKE256")
	outFlag := fs.String("out", "ffbench_report.html", "HTML report output path")
	configFlag := fs.String("config", "", "JSON config path (overrides other flags)")
	verbose := fs.Bool("v", false, "verbose progress logging")
	fs.Parse(args)
	if *verbose {
		flog.Verbose = true
		measure.Enabled = true
	}

	cfg := &Config{Sizes: parseSizes(*sizesFlag), Seed: *seedFlag, OutputHTML: *outFlag}
	if *configFlag != "" {
		f, err := os.Open(*configFlag)
		if err != nil {
			log.Fatalf("ffbench: open config: %v", err)
		}
		loaded, err := LoadConfig(f)
		f.Close()
		if err != nil {
			log.Fatalf("ffbench: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ffbench: %v", err)
	}

	fld, err := field.New(defaultModulus(cfg.ModulusHex), field.Config{})
	if err != nil {
		log.Fatalf("ffbench: field.New: %v", err)
	}

	xof := newShake256XOF(cfg.Seed)
	var results []benchResult
	for _, n := range cfg.Sizes {
		flog.Debugf("benchmarking size %d", n)
		a := randomVector(fld, xof, n)
		b := randomVector(fld, xof, n)
		scalar := randomVector(fld, xof, 1).Get(0)

		results = append(results, measureOp("add", n, func() { array.AddVectorScalar(a, scalar) }))
		results = append(results, measureOp("mul", n, func() { array.MulVectorElements(a, b) }))
		results = append(results, measureOp("inv", n, func() { benchPerElementInv(fld, a) }))
		results = append(results, measureOp("batch_inverse", n, func() { array.InvVectorElements(a) }))

		if r, ok := benchFFT(fld, a); ok {
			results = append(results, r)
		} else {
			flog.Warnf("skipping fft benchmark for size %d: no root of unity found", n)
		}
	}

	if err := renderReport(cfg.OutputHTML, results); err != nil {
		log.Fatalf("ffbench: render report: %v", err)
	}
	fmt.Printf("wrote %s (%d samples)\n", cfg.OutputHTML, len(results))

	counters := measureutil.SnapshotAndReset()
	for name, count := range counters {
		flog.Debugf("op counter %s = %d", name, count)
	}
	if measure.Enabled {
		fmt.Printf("total field operations counted: %d\n", measureutil.TotalFieldOps(counters))
	}
	for _, entry := range prof.SnapshotAndReset() {
		flog.Debugf("timing %s = %s", entry.Label, entry.Dur)
	}
}

type benchResult struct {
	Op        string
	Size      int
	OpsPerSec float64
}

// itersFor scales repetition count down as the vector grows, so small and
// large sizes both finish in roughly the same wall-clock budget.
func itersFor(n int) int {
	const targetOps = 1 << 20
	iters := targetOps / n
	if iters < 3 {
		iters = 3
	}
	if iters > 10000 {
		iters = 10000
	}
	return iters
}

func measureOp(op string, n int, fn func()) benchResult {
	iters := itersFor(n)
	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	elapsed := time.Since(start)
	prof.Track(start, fmt.Sprintf("%s/%d", op, n))
	return benchResult{Op: op, Size: n, OpsPerSec: float64(iters) / elapsed.Seconds()}
}

func benchPerElementInv(f *field.Field, v *array.Vector) {
	for i := 0; i < v.Length(); i++ {
		f.Inv(v.Get(i))
	}
}

func benchFFT(f *field.Field, v *array.Vector) (benchResult, bool) {
	n := v.Length()
	omega, err := f.GetRootOfUnity(uint64(n))
	if err != nil {
		return benchResult{}, false
	}
	roots := f.GetPowerCycle(omega)
	if len(roots) != n {
		return benchResult{}, false
	}
	p := poly.FromCoeffs(f, v.ToValues())
	return measureOp("fft", n, func() {
		if _, err := poly.EvalPolyAtRoots(p, roots); err != nil {
			flog.Warnf("fft benchmark: %v", err)
		}
	}), true
}

func parseSizes(csv string) []int {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			log.Fatalf("ffbench: invalid size %q", p)
		}
		out = append(out, n)
	}
	return out
}

// defaultModulus returns hexStr decoded as the field modulus, or the spec's
// concrete scenario prime 2^128-159 when hexStr is empty.
func defaultModulus(hexStr string) field.Element {
	if hexStr == "" {
		p := new(big.Int).Lsh(big.NewInt(1), 128)
		p.Sub(p, big.NewInt(159))
		return wideint.FromBig(p)
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		log.Fatalf("ffbench: invalid modulus_hex: %v", err)
	}
	return wideint.FromBig(new(big.Int).SetBytes(raw))
}

// shake256XOF is a resettable SHAKE-256 squeeze stream, used here to expand
// one CLI seed string into as many field elements as the run needs,
// deterministically.
type shake256XOF struct {
	h sha3.ShakeHash
}

func newShake256XOF(seed string) *shake256XOF {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte(seed)); err != nil {
		log.Fatalf("ffbench: seed XOF write: %v", err)
	}
	return &shake256XOF{h: h}
}

func (x *shake256XOF) next16() [16]byte {
	var out [16]byte
	if _, err := x.h.Read(out[:]); err != nil {
		log.Fatalf("ffbench: seed XOF read: %v", err)
	}
	return out
}

func randomVector(f *field.Field, xof *shake256XOF, n int) *array.Vector {
	elems := make([]field.Element, n)
	for i := 0; i < n; i++ {
		b := xof.next16()
		elems[i] = f.Reduce(wideint.U128FromBytes16(b[:]))
	}
	return array.VectorFromElements(f, elems)
}

func renderReport(path string, results []benchResult) error {
	byOp := map[string][]benchResult{}
	var order []string
	sizeSet := map[int]bool{}
	for _, r := range results {
		if _, ok := byOp[r.Op]; !ok {
			order = append(order, r.Op)
		}
		byOp[r.Op] = append(byOp[r.Op], r)
		sizeSet[r.Size] = true
	}
	sizes := make([]int, 0, len(sizeSet))
	for n := range sizeSet {
		sizes = append(sizes, n)
	}
	for i := 1; i < len(sizes); i++ {
		for j := i; j > 0 && sizes[j-1] > sizes[j]; j-- {
			sizes[j-1], sizes[j] = sizes[j], sizes[j-1]
		}
	}

	xAxis := make([]string, len(sizes))
	for i, n := range sizes {
		xAxis[i] = strconv.Itoa(n)
	}
	sizeIndex := make(map[int]int, len(sizes))
	for i, n := range sizes {
		sizeIndex[n] = i
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "ff128 benchmark",
			Subtitle: "operations per second by vector size",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "vector size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ops/sec"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xAxis)

	for _, op := range order {
		points := make([]opts.LineData, len(sizes))
		for _, r := range byOp[op] {
			points[sizeIndex[r.Size]] = opts.LineData{Value: r.OpsPerSec}
		}
		line.AddSeries(op, points)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return line.Render(f)
}
