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

package constants

const (
	APPNAME    = "ruleenginectl"
	APPVERSION = "0.1.0"

	EnvLogLevel           = "RULEENGINE_LOG_LEVEL"
	EnvDebug              = "RULEENGINE_DEBUG"
	EnvOtelEnabled        = "RULEENGINE_OTEL_ENABLED"
	EnvOtelEndpoint       = "RULEENGINE_OTEL_ENDPOINT"
	EnvOtelProtocol       = "RULEENGINE_OTEL_PROTOCOL"
	EnvOtelTraceExecution = "RULEENGINE_OTEL_TRACE_EXECUTION"
)
