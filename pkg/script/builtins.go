package script

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/foamgen/pkg/geometry"
	"github.com/chazu/foamgen/pkg/mesh"
	"github.com/chazu/foamgen/pkg/settings"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms case-setup source before passing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     avoiding keyword symbols that would collide with user variables.
//  2. Kebab-case to underscore: max-cell-size -> max_cell_size, since
//     zygomys reads hyphens as subtraction.
//  3. ; line comments become // comments.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving :=.
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Kebab-case identifiers: only when the hyphen sits between
		// identifier characters, so minus stays an operator.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string, returning the
// keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpBox wraps a bounding box so it can be built by (bbox ...) and
// consumed by (surface ...).
type sexpBox struct {
	box geometry.BoundingBox
}

func (b *sexpBox) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(bbox %g %g %g %g %g %g)",
		b.box.MinX, b.box.MaxX, b.box.MinY, b.box.MaxY, b.box.MinZ, b.box.MaxZ)
}
func (b *sexpBox) Type() *zygo.RegisteredType { return nil }

func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

func toBox(s zygo.Sexp) (geometry.BoundingBox, error) {
	if b, ok := s.(*sexpBox); ok {
		return b.box, nil
	}
	return geometry.BoundingBox{}, fmt.Errorf("expected bounding box, got %T (%s)", s, s.SexpString(nil))
}

// boundsSurface is a reader.Surface backed only by a scripted bounding
// box. The box center doubles as the interior seed; scripts that need a
// real signed-distance probe attach surfaces through the Go API instead.
type boundsSurface struct {
	box geometry.BoundingBox
}

func (s boundsSurface) BoundingBox() geometry.BoundingBox { return s.box }

func (s boundsSurface) CenterOfMass() geometry.Vector { return s.box.Center() }

func (s boundsSurface) LocateInsidePoint(seed geometry.Vector) (geometry.Vector, error) {
	return seed, nil
}

func (s boundsSurface) LocateOutsidePoint() geometry.Vector {
	dx, _, dz := s.box.Size()
	return geometry.Vector{
		X: s.box.MaxX + 0.05*dx,
		Y: s.box.MinY * 0.95,
		Z: dz / 2,
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the case-setup builtins into a zygomys
// environment. The builtins mutate the provided aggregate during
// evaluation; surfaces with the wall purpose trigger the full derivation.
func registerBuiltins(env *zygo.Zlisp, s *settings.MeshSettings) {

	// -----------------------------------------------------------------------
	// (fluid :rho 1.225 :nu 1.5e-5)
	// -----------------------------------------------------------------------
	env.AddFunction("fluid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if v, ok := pa.kw["rho"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fluid: rho: %w", err)
			}
			s.Fluid.Rho = f
		}
		if v, ok := pa.kw["nu"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fluid: nu: %w", err)
			}
			s.Fluid.Nu = f
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (inlet-velocity 30 0 0) or (inlet-velocity 30)
	// -----------------------------------------------------------------------
	env.AddFunction("inlet_velocity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 && len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("inlet-velocity takes a magnitude or three components")
		}
		comps := make([]float64, len(args))
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("inlet-velocity: %w", err)
			}
			comps[i] = f
		}
		if len(comps) == 1 {
			s.InletSpeed = comps[0]
		} else {
			v := geometry.Vector{X: comps[0], Y: comps[1], Z: comps[2]}
			s.InletSpeed = vectorMagnitude(v)
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (refine :coarse) / (refine :medium) / (refine :fine)
	// -----------------------------------------------------------------------
	env.AddFunction("refine", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("refine takes one amount keyword")
		}
		word, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("refine: %w", err)
		}
		amount, err := mesh.ParseRefinementAmount(word)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("refine: %w", err)
		}
		s.Amount = amount
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (flow :external :on-ground) / (flow :internal) / (flow :half-model)
	// -----------------------------------------------------------------------
	// Every argument is a standalone flag keyword, so the args are
	// scanned directly instead of going through parseArgs.
	env.AddFunction("flow", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		for _, a := range args {
			flag, ok := isKW(a)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("flow: expected flag keyword, got %s", a.SexpString(nil))
			}
			switch flag {
			case "internal":
				s.Regime.Internal = true
			case "external":
				s.Regime.Internal = false
			case "on-ground":
				s.Regime.OnGround = true
			case "half-model":
				s.Regime.HalfModel = true
			default:
				return zygo.SexpNull, fmt.Errorf("flow: unknown flag :%s", flag)
			}
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (max-cell-size 0.25), (scale 1.0), (expansion-ratio 1.3)
	// -----------------------------------------------------------------------
	setScalar := func(builtin string, assign func(float64)) {
		env.AddFunction(builtin, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s takes one number", builtin)
			}
			f, err := toFloat64(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", builtin, err)
			}
			assign(f)
			return zygo.SexpNull, nil
		})
	}
	setScalar("max_cell_size", func(f float64) { s.MaxCellSize = f })
	setScalar("scale", func(f float64) { s.Scale = f })
	setScalar("expansion_ratio", func(f float64) { s.ExpansionRatio = f })

	// -----------------------------------------------------------------------
	// (bbox minx maxx miny maxy minz maxz)
	// -----------------------------------------------------------------------
	env.AddFunction("bbox", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 6 {
			return zygo.SexpNull, fmt.Errorf("bbox takes six bounds")
		}
		bounds := make([]float64, 6)
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("bbox: %w", err)
			}
			bounds[i] = f
		}
		return &sexpBox{box: geometry.NewBoundingBox(
			bounds[0], bounds[1], bounds[2], bounds[3], bounds[4], bounds[5],
		)}, nil
	})

	// -----------------------------------------------------------------------
	// (surface "car.stl" :purpose :wall :bounds (bbox ...) [:value 300])
	// -----------------------------------------------------------------------
	env.AddFunction("surface", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("surface takes a patch name")
		}
		patchName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("surface: name: %w", err)
		}

		purposeWord := "wall"
		if v, ok := pa.kw["purpose"]; ok {
			purposeWord, err = toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("surface: purpose: %w", err)
			}
		}
		purpose, err := settings.ParsePurpose(purposeWord)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("surface: %w", err)
		}

		v, ok := pa.kw["bounds"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("surface %q: missing :bounds", patchName)
		}
		box, err := toBox(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("surface: bounds: %w", err)
		}

		property := settings.Property{}
		if v, ok := pa.kw["value"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("surface: value: %w", err)
			}
			property = settings.Scalar(f)
		}
		if v, ok := pa.kw["velocity"]; ok {
			elems, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("surface: velocity: %w", err)
			}
			if len(elems) != 3 {
				return zygo.SexpNull, fmt.Errorf("surface: velocity takes three components")
			}
			comps := make([]float64, 3)
			for i, e := range elems {
				comps[i], err = toFloat64(e)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("surface: velocity: %w", err)
				}
			}
			property = settings.Velocity(comps[0], comps[1], comps[2])
		}

		if err := s.AddSurface(patchName, purpose, property, boundsSurface{box: box}); err != nil {
			return zygo.SexpNull, fmt.Errorf("surface %q: %w", patchName, err)
		}
		return zygo.SexpNull, nil
	})
}

func vectorMagnitude(v geometry.Vector) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
