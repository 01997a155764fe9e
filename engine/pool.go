// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"context"

	"github.com/jackc/puddle/v2"
	"github.com/sentriefraud/ruleengine/vm"
)

// newVMPool builds a bounded pool of reusable VM runtimes, the same
// pooling library and discipline the teacher uses for its per-alias JS
// runtimes (SPEC_FULL.md §4.4 "[ADDED] VM pooling"). Destructor is a no-op:
// a *vm.VM owns no external resource, Reset() is enough between uses.
func newVMPool(limits vm.Limits, maxSize int32) (*puddle.Pool[*vm.VM], error) {
	return puddle.NewPool(&puddle.Config[*vm.VM]{
		Constructor: func(context.Context) (*vm.VM, error) {
			return vm.New(limits), nil
		},
		Destructor: func(*vm.VM) {},
		MaxSize:    maxSize,
	})
}

// withPooledVM acquires a VM, runs fn, resets it, and always releases it
// back to the pool — even when fn returns an error — so a failed execution
// can never leak state into the next checkout.
func withPooledVM(ctx context.Context, pool *puddle.Pool[*vm.VM], fn func(*vm.VM) (*ExecutionResult, error)) (*ExecutionResult, error) {
	res, err := pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		res.Value().Reset()
		res.Release()
	}()
	return fn(res.Value())
}
