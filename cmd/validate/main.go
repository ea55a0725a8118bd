// Command validate checks the estimators against analytic Gaussian ground
// truth: the Kozachenko-Leonenko entropy and mutual-information brackets,
// degenerate identical-column behavior, the smoothed-histogram MI reference
// value, and d-prime saturation. It exits nonzero on any failure.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"infometrics/internal/continuous"
	"infometrics/internal/discrim"
	"infometrics/internal/histmi"
	"infometrics/internal/knn"
	"infometrics/internal/testkit"
)

// Config holds the validation scenario parameters. Values mirror the
// published reference configuration for these estimators.
type Config struct {
	Rows         int     `yaml:"rows"`
	Neighbors    int     `yaml:"neighbors"`
	Seed         uint64  `yaml:"seed"`
	Sigma        float64 `yaml:"sigma"`
	MITolerance  float64 `yaml:"mi_tolerance"`
	EntropyFloor float64 `yaml:"entropy_floor"`
	Hist2DLow    float64 `yaml:"hist2d_low"`
	Hist2DHigh   float64 `yaml:"hist2d_high"`
}

// DefaultConfig returns the reference validation scenario.
func DefaultConfig() Config {
	return Config{
		Rows:         50000,
		Neighbors:    5,
		Seed:         42,
		Sigma:        1,
		MITolerance:  0.3,
		EntropyFloor: 0.9,
		Hist2DLow:    2.9,
		Hist2DHigh:   3.1,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "optional YAML scenario file (defaults embedded)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("[validate] %v", err)
	}

	failures := 0
	check := func(name string, ok bool, detail string) {
		status := "ok"
		if !ok {
			status = "FAIL"
			failures++
		}
		log.Printf("[validate] %-28s %s  %s", name, status, detail)
	}

	est := continuous.NewEstimator(knn.NewKDSearcher())

	// 3-D correlated Gaussian: the estimate undershoots the analytic
	// entropy, but by less than the configured floor fraction.
	p3 := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0.5,
		0, 0, 1,
	})
	x3 := testkit.CorrelatedGaussian(p3, cfg.Rows, cfg.Seed)
	hTheory := continuous.GaussianEntropyCov(testkit.CovarianceOf(p3))
	hEst, err := est.Entropy(x3, cfg.Neighbors)
	if err != nil {
		log.Fatalf("[validate] entropy: %v", err)
	}
	check("gaussian-entropy", hEst < hTheory && hEst > cfg.EntropyFloor*hTheory,
		fmt.Sprintf("est=%.4f theory=%.4f", hEst, hTheory))

	// 2-D correlated Gaussian: MI undershoots the analytic value but stays
	// within the tolerance.
	p2 := mat.NewDense(2, 2, []float64{
		1, 0,
		0.5, 1,
	})
	z := testkit.CorrelatedGaussian(p2, cfg.Rows, cfg.Seed)
	c2 := testkit.CovarianceOf(p2)
	miTheory := continuous.GaussianEntropy(c2.At(0, 0)) + continuous.GaussianEntropy(c2.At(1, 1)) - continuous.GaussianEntropyCov(c2)
	miEst, err := est.MutualInformation([]mat.Matrix{
		testkit.ColumnSample(z, 0),
		testkit.ColumnSample(z, 1),
	}, cfg.Neighbors)
	if err != nil {
		log.Fatalf("[validate] mutual information: %v", err)
	}
	check("gaussian-mi", miEst < miTheory && miTheory < miEst+cfg.MITolerance,
		fmt.Sprintf("est=%.4f theory=%.4f", miEst, miTheory))

	// Degenerate identical columns stay finite through the epsilon floor.
	v := testkit.StandardNormal(cfg.Rows, cfg.Seed)
	dup := mat.NewDense(cfg.Rows, 2, nil)
	for i, val := range v {
		dup.Set(i, 0, val)
		dup.Set(i, 1, val)
	}
	hDup, err := est.Entropy(dup, cfg.Neighbors)
	if err != nil {
		log.Fatalf("[validate] degenerate entropy: %v", err)
	}
	col := mat.NewDense(cfg.Rows, 1, v)
	miDup, err := est.MutualInformation([]mat.Matrix{col, col}, cfg.Neighbors)
	if err != nil {
		log.Fatalf("[validate] degenerate mi: %v", err)
	}
	check("degenerate-finite", !math.IsInf(hDup, 0) && !math.IsNaN(hDup) && !math.IsInf(miDup, 0) && !math.IsNaN(miDup),
		fmt.Sprintf("h=%.4f mi=%.4f", hDup, miDup))

	// Self-MI of the smoothed joint histogram lands on its reference value.
	hist, err := histmi.MutualInformation2D(v, v, cfg.Sigma, false)
	if err != nil {
		log.Fatalf("[validate] histogram mi: %v", err)
	}
	check("hist2d-self-mi", hist > cfg.Hist2DLow && hist < cfg.Hist2DHigh,
		fmt.Sprintf("mi=%.4f want (%.1f, %.1f)", hist, cfg.Hist2DLow, cfg.Hist2DHigh))

	// Identical series saturate both rates; the half-unit correction must
	// keep d-prime finite. Quantizing the series guarantees flat steps so
	// the noise-trial group is populated.
	vq := make([]float64, len(v))
	for i, val := range v {
		vq[i] = math.Round(val*4) / 4
	}
	dp, err := discrim.DPrime(vq, vq)
	if err != nil {
		log.Fatalf("[validate] d-prime: %v", err)
	}
	check("dprime-saturation", !math.IsInf(dp, 0) && !math.IsNaN(dp), fmt.Sprintf("d'=%.4f", dp))

	if failures > 0 {
		log.Printf("[validate] %d check(s) failed", failures)
		os.Exit(1)
	}
	log.Printf("[validate] all checks passed")
}
