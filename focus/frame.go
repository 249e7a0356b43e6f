/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package focus

import (
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// Frame is a single call site.
type Frame struct {
	Class  string
	Method string
	File   string
	Line   int
}

// Function returns the fully qualified Go symbol of the frame.
func (f Frame) Function() string {
	if f.Class == "" {
		return f.Method
	}
	return f.Class + "." + f.Method
}

// String formats the frame as "pkg.Type.Method(file:line)".
func (f Frame) String() string {
	return f.Function() + "(" + f.File + ":" + strconv.Itoa(f.Line) + ")"
}

// FrameOf splits a runtime frame into class and method.
func FrameOf(fr runtime.Frame) Frame {
	class, method := splitFunction(fr.Function)
	return Frame{Class: class, Method: method, File: fr.File, Line: fr.Line}
}

// splitFunction splits at the last '.' following the last '/'.
func splitFunction(fn string) (class, method string) {
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.LastIndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return "", fn
	}
	dot += slash + 1
	return fn[:dot], fn[dot+1:]
}

// Stack is a list of frames, innermost first.
type Stack []Frame

const maxDepth = 64

// Capture records the calling goroutine's stack. skip 0 starts at the
// caller of Capture.
func Capture(skip int) Stack {
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, FrameOf(fr))
		if !more {
			break
		}
	}
	return out
}

// Clone returns a copy of s.
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// String renders one frame per line, each prefixed with "\tat ".
func (s Stack) String() string {
	var sb strings.Builder
	for i, f := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("\tat ")
		sb.WriteString(f.String())
	}
	return sb.String()
}

// LogValue renders the stack as a list of frame strings.
func (s Stack) LogValue() slog.Value {
	frames := make([]string, len(s))
	for i, f := range s {
		frames[i] = f.String()
	}
	return slog.AnyValue(frames)
}
