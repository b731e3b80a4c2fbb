// SPDX-License-Identifier: MIT

// svddemo decomposes one matrix with package svd and prints the factors,
// the singular values and the reconstruction/orthonormality errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

const version = "svddemo 0.1.0"

var log = logging.MustGetLogger("svddemo")
var formatter = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)

// command-line options
var (
	app = kingpin.New("svddemo", "SVD from eigendecompositions of X·Xᵗ and Xᵗ·X").Version(version)

	matrixLit  = app.Flag("matrix", "matrix literal, rows separated by ';', entries by ','").Short('m').Default("4,0,2;3,-5,1;2,3,0").String()
	solverName = app.Flag("solver", "symmetric eigensolver (jacobi or gonum)").Default("jacobi").Enum("jacobi", "gonum")
	methodName = app.Flag("method", "how V is obtained (projected or two-sided)").Default(svd.DefaultMethod.String()).Enum(svd.MethodProjected.String(), svd.MethodTwoSided.String())
	rankTol    = app.Flag("rank-tol", "relative cutoff below which singular values count as zero").Default(fmt.Sprint(svd.DefaultRankTolerance)).Float64()
	plotFile   = app.Flag("plot", "write a singular value plot to this PNG file").String()
	logLevel   = app.Flag("loglevel", "loglevel (critical, error, warning, notice, info, debug)").Default("notice").String()
)

// config is the parsed command line.
type config struct {
	Literal  string
	Solver   string
	Method   string
	RankTol  float64
	PlotFile string
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logging.SetFormatter(formatter)
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "svddemo")
	logging.SetLevel(level, "svd")

	log.Info(version)
	log.Debug("Command line:", os.Args)

	cfg := config{
		Literal:  *matrixLit,
		Solver:   *solverName,
		Method:   *methodName,
		RankTol:  *rankTol,
		PlotFile: *plotFile,
	}
	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// run decomposes cfg.Literal and reports to w.
func run(w io.Writer, cfg config) error {
	x, err := parseMatrix(cfg.Literal)
	if err != nil {
		return err
	}
	solver, err := solverByName(cfg.Solver)
	if err != nil {
		return err
	}
	method, err := svd.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	if cfg.RankTol < 0 || cfg.RankTol >= 1 {
		return fmt.Errorf("rank-tol %g outside [0, 1)", cfg.RankTol)
	}

	log.Infof("decomposing %dx%d matrix (solver=%s, method=%s)", x.Rows(), x.Cols(), cfg.Solver, method)
	res, err := svd.Decompose(x,
		svd.WithEigensolver(solver),
		svd.WithMethod(method),
		svd.WithRankTolerance(cfg.RankTol),
	)
	if err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		m    *matrix.Dense
	}{{"X", x}, {"U", res.U}, {"Σ", res.Sigma}, {"Vᵗ", res.Vt}} {
		if err = printMatrix(w, f.name, f.m); err != nil {
			return err
		}
	}

	recon, err := res.ReconstructionError(x)
	if err != nil {
		return err
	}
	ortho, err := res.OrthonormalityError()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "singular values: %.6g\n", res.SingularValues())
	fmt.Fprintf(w, "rank: %d\n", res.Rank(cfg.RankTol))
	fmt.Fprintf(w, "max |UΣVᵗ - X|: %.3e\n", recon)
	fmt.Fprintf(w, "max |QᵗQ - I|: %.3e\n", ortho)
	if method == svd.MethodTwoSided && recon > 1e-8 {
		log.Warningf("two-sided factors do not reconstruct X (error %.3e); signs of U and V disagree", recon)
	}

	if cfg.PlotFile != "" {
		if err = plotValues(cfg.PlotFile, res.SingularValues()); err != nil {
			return err
		}
		log.Infof("plot written to %s", cfg.PlotFile)
	}

	return nil
}

// printMatrix writes m through gonum's matrix formatter.
func printMatrix(w io.Writer, name string, m *matrix.Dense) error {
	g, err := svd.ToGonum(m)
	if err != nil {
		return err
	}
	pad := fmt.Sprintf("%*s", len([]rune(name))+3, "")
	_, err = fmt.Fprintf(w, "%s = %.4g\n\n", name, mat.Formatted(g, mat.Prefix(pad), mat.Squeeze()))

	return err
}

// plotValues writes σᵢ against i as a line plot.
func plotValues(path string, values []float64) error {
	p := plot.New()
	p.Title.Text = "Singular values"
	p.X.Label.Text = "index"
	p.Y.Label.Text = "σ"

	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	if err := plotutil.AddLinePoints(p, "σ", pts); err != nil {
		return err
	}

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
