package packet

import (
	"errors"
	"io"
	"math"
)

var ErrInvalidEnum = errors.New("enum value out of range")

// Angle is a rotation in steps of 1/256 of a full turn.
type Angle uint8

// AngleFromDegrees wraps deg into a single turn, rounding down to the step.
func AngleFromDegrees(deg float32) Angle {
	return Angle(int64(math.Floor(float64(deg) * 256 / 360)))
}

func (a Angle) Degrees() float32 {
	return float32(a) * 360 / 256
}

func WriteAngle(w io.Writer, v Angle) error {
	return WriteByte(w, byte(v))
}

func ReadAngle(r *Buffer) (Angle, error) {
	b, err := ReadByte(r)
	return Angle(b), err
}

// Rotation is a per-axis rotation in degrees, as used by armor stand poses.
type Rotation struct {
	X, Y, Z float32
}

func WriteRotation(w io.Writer, v Rotation) (err error) {
	if err = WriteFloat(w, v.X); err != nil {
		return
	}
	if err = WriteFloat(w, v.Y); err != nil {
		return
	}
	return WriteFloat(w, v.Z)
}

func ReadRotation(r *Buffer) (v Rotation, err error) {
	if v.X, err = ReadFloat(r); err != nil {
		return
	}
	if v.Y, err = ReadFloat(r); err != nil {
		return
	}
	v.Z, err = ReadFloat(r)
	return
}

// Facing is a block face, sent as a VarInt.
type Facing int32

const (
	FacingDown Facing = iota
	FacingUp
	FacingNorth
	FacingSouth
	FacingWest
	FacingEast
)

var facingNames = [...]string{"down", "up", "north", "south", "west", "east"}

func (f Facing) Valid() bool {
	return f >= FacingDown && f <= FacingEast
}

func (f Facing) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return facingNames[f]
}

func WriteFacing(w io.Writer, v Facing) error {
	if !v.Valid() {
		return ErrInvalidEnum
	}
	return WriteVarInt(w, int32(v))
}

func ReadFacing(r *Buffer) (Facing, error) {
	start := r.off
	n, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if f := Facing(n); f.Valid() {
		return f, nil
	}
	r.off = start
	return 0, ErrInvalidEnum
}

// Pose is an entity pose from entity metadata, sent as a VarInt.
type Pose int32

const (
	PoseStanding Pose = iota
	PoseFallFlying
	PoseSleeping
	PoseSwimming
	PoseSpinAttack
	PoseSneaking
	PoseDying
)

var poseNames = [...]string{"standing", "fall_flying", "sleeping", "swimming", "spin_attack", "sneaking", "dying"}

func (p Pose) Valid() bool {
	return p >= PoseStanding && p <= PoseDying
}

func (p Pose) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return poseNames[p]
}

func WritePose(w io.Writer, v Pose) error {
	if !v.Valid() {
		return ErrInvalidEnum
	}
	return WriteVarInt(w, int32(v))
}

func ReadPose(r *Buffer) (Pose, error) {
	start := r.off
	n, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if p := Pose(n); p.Valid() {
		return p, nil
	}
	r.off = start
	return 0, ErrInvalidEnum
}
