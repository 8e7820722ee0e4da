// SPDX-License-Identifier: MIT

// Package camera - YAML rig configuration.
//
// A Config describes one camera (pose, projection, optional model
// transform) in human units: pitch, yaw and fov in degrees, model rotation
// in radians. LoadConfig decodes strictly (unknown keys are errors) and
// validates; Build turns a valid Config into ready-to-upload matrices.
//
//	layout: column
//	position: [0, 0, 3]
//	yaw: -90
//	projection: {screen: [1280, 720], fov: 70, near: 0.1, far: 100}

package camera

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lina/diag"
	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the YAML description of a camera rig.
type Config struct {
	Layout     string           `yaml:"layout,omitempty"`
	Position   []float32        `yaml:"position"`
	Pitch      float32          `yaml:"pitch"`
	Yaw        float32          `yaml:"yaw"`
	WorldUp    []float32        `yaml:"world_up,omitempty"`
	Projection ProjectionConfig `yaml:"projection"`
	Model      *ModelConfig     `yaml:"model,omitempty"`
}

// ProjectionConfig describes the perspective projection.
type ProjectionConfig struct {
	Screen []int     `yaml:"screen"`
	FOV    float32   `yaml:"fov"`
	Near   float32   `yaml:"near"`
	Far    float32   `yaml:"far"`
	Offset []float32 `yaml:"offset,omitempty"`
}

// ModelConfig describes the model transform. Every field is optional:
// position and rotation default to zero, scale to (1,1,1,1).
type ModelConfig struct {
	Position []float32 `yaml:"position,omitempty"`
	Rotation []float32 `yaml:"rotation,omitempty"`
	Scale    []float32 `yaml:"scale,omitempty"`
}

// Rig holds the resolved camera: its basis and the three matrices, all in
// the configured layout.
type Rig struct {
	Layout     Layout
	Position   vector.Vec3
	Basis      Basis
	View       matrix.Mat4
	Projection matrix.Mat4
	Model      matrix.Mat4
}

// LoadConfig decodes a YAML rig from r and validates it.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("camera: decode config: empty document")
		}
		return nil, fmt.Errorf("camera: decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadConfigFile opens path and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("camera: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks every field and returns the first violation, wrapped with
// its field path. The check order follows the document order.
func (c *Config) Validate() error {
	if _, err := ParseLayout(c.Layout); err != nil {
		return fieldErrorf("layout", err)
	}
	if err := checkVec(c.Position, 3, "position"); err != nil {
		return err
	}
	if isNaN32(c.Pitch) || isNaN32(c.Yaw) {
		return fieldErrorf("pitch/yaw", ErrInvalidVector)
	}
	if c.WorldUp != nil {
		if err := checkVec(c.WorldUp, 3, "world_up"); err != nil {
			return err
		}
		if c.WorldUp[0] == 0 && c.WorldUp[1] == 0 && c.WorldUp[2] == 0 {
			return fieldErrorf("world_up", ErrInvalidVector)
		}
	}

	p := c.Projection
	if len(p.Screen) != 2 {
		return fieldErrorf("projection.screen", ErrInvalidVector)
	}
	if p.Screen[0] <= 0 || p.Screen[1] <= 0 {
		return fieldErrorf("projection.screen", ErrInvalidScreen)
	}
	if !(p.FOV > 0 && p.FOV < 180) {
		return fieldErrorf("projection.fov", ErrInvalidFOV)
	}
	if !(p.Near > 0 && p.Far > p.Near) || math.IsInf(float64(p.Far), 0) {
		return fieldErrorf("projection.near/far", ErrInvalidClipRange)
	}
	if p.Offset != nil {
		if err := checkVec(p.Offset, 3, "projection.offset"); err != nil {
			return err
		}
	}

	if m := c.Model; m != nil {
		if m.Position != nil {
			if err := checkVec(m.Position, 3, "model.position"); err != nil {
				return err
			}
		}
		if m.Rotation != nil {
			if err := checkVec(m.Rotation, 3, "model.rotation"); err != nil {
				return err
			}
		}
		if m.Scale != nil {
			if err := checkVec(m.Scale, 4, "model.scale"); err != nil {
				return err
			}
		}
	}

	return nil
}

// Build validates c and resolves it into a Rig. Pitch, yaw and fov are
// converted from degrees; model rotation is used as radians.
func (c *Config) Build() (*Rig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	layout, _ := ParseLayout(c.Layout) // validated above

	var basisOpts []Option
	if c.WorldUp != nil {
		basisOpts = append(basisOpts, WithWorldUp(vec3(c.WorldUp)))
	}
	var projOpts []Option
	if c.Projection.Offset != nil {
		projOpts = append(projOpts, WithOffset(vec3(c.Projection.Offset)))
	}

	pos := vec3(c.Position)
	basis := NewBasis(degToRad(c.Pitch), degToRad(c.Yaw), basisOpts...)
	screen := vector.NewVector2(c.Projection.Screen[0], c.Projection.Screen[1])

	rig := &Rig{
		Layout:     layout,
		Position:   pos,
		Basis:      basis,
		View:       basis.View(layout, pos),
		Projection: Perspective(layout, screen, c.Projection.FOV, c.Projection.Near, c.Projection.Far, projOpts...),
		Model:      c.model(layout),
	}

	if ce := diag.Logger().Check(zap.DebugLevel, "camera: rig built"); ce != nil {
		ce.Write(
			zap.Stringer("layout", layout),
			zap.Float32s("position", c.Position),
			zap.Float32("pitch_deg", c.Pitch),
			zap.Float32("yaw_deg", c.Yaw),
			zap.Bool("model", c.Model != nil),
		)
	}

	return rig, nil
}

// model resolves the optional model section; absent means identity.
func (c *Config) model(layout Layout) matrix.Mat4 {
	if c.Model == nil {
		return matrix.NewMat4()
	}
	var pos, rot vector.Vec3
	if c.Model.Position != nil {
		pos = vec3(c.Model.Position)
	}
	if c.Model.Rotation != nil {
		rot = vec3(c.Model.Rotation)
	}
	var opts []Option
	if s := c.Model.Scale; s != nil {
		opts = append(opts, WithScale(vector.NewVector4(s[0], s[1], s[2], s[3])))
	}

	return Model(layout, pos, rot, opts...)
}

// checkVec enforces arity and rejects NaN components.
func checkVec(v []float32, n int, field string) error {
	if len(v) != n {
		return fieldErrorf(field, fmt.Errorf("want %d components, got %d: %w", n, len(v), ErrInvalidVector))
	}
	for _, x := range v {
		if isNaN32(x) {
			return fieldErrorf(field, ErrInvalidVector)
		}
	}

	return nil
}

func vec3(v []float32) vector.Vec3 { return vector.NewVector3(v[0], v[1], v[2]) }

func degToRad(d float32) float32 { return float32(float64(d) * math.Pi / 180) }
