package builtin

import (
	"strconv"
	"strings"
)

// MaxLights is the capacity of every light array built-in.
const MaxLights = 4

// Kind identifies one reserved built-in uniform.
type Kind int

const (
	WorldToClip Kind = iota
	ViewportSize
	WorldToCamera
	WorldToCameraNormal
	CameraToClip
	Time
	CameraLocation
	LightCount
	LightPosition
	LightDirection
	LightInCameraSpace
	FrameBufferColor

	numKinds
)

type kindInfo struct {
	base     string
	capacity int
}

var kinds = [numKinds]kindInfo{
	WorldToClip:         {base: "_worldToClip"},
	ViewportSize:        {base: "_viewportSize"},
	WorldToCamera:       {base: "_worldToCamera"},
	WorldToCameraNormal: {base: "_worldToCameraNormal"},
	CameraToClip:        {base: "_cameraToClip"},
	Time:                {base: "_time"},
	CameraLocation:      {base: "_cameraLocation"},
	LightCount:          {base: "_lightCount"},
	LightPosition:       {base: "_lightPosition", capacity: MaxLights},
	LightDirection:      {base: "_lightDirection", capacity: MaxLights},
	LightInCameraSpace:  {base: "_lightInCameraSpace", capacity: MaxLights},
	FrameBufferColor:    {base: "_frameBufferColor"},
}

// Kinds lists every built-in in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) valid() bool { return k >= 0 && k < numKinds }

// BaseName is the name used for the uniform location lookup.
func (k Kind) BaseName() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].base
}

// Capacity is the declared array size, 0 for non-array built-ins.
func (k Kind) Capacity() int {
	if !k.valid() {
		return 0
	}
	return kinds[k].capacity
}

// Name is the name as a shader declares it, e.g. "_lightPosition[4]".
func (k Kind) Name() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	info := kinds[k]
	if info.capacity == 0 {
		return info.base
	}
	return info.base + "[" + strconv.Itoa(info.capacity) + "]"
}

func (k Kind) String() string { return k.Name() }

// BaseName strips an array suffix: "_lightPosition[4]" and
// "_lightPosition[0]" both become "_lightPosition".
func BaseName(name string) string {
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}
