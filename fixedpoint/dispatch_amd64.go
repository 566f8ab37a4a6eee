// Copyright 2026 gemmlowp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package fixedpoint

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarLevel()
		return
	}

	switch {
	case cpu.X86.HasAVX2:
		nativeLevel = LevelAVX2
		nativeWidth = 32
	case cpu.X86.HasSSE2:
		// SSE2 is part of the x86-64 baseline, so this is the floor on
		// any amd64 host.
		nativeLevel = LevelSSE2
		nativeWidth = 16
	default:
		setScalarLevel()
	}
}
