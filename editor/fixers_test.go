package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripStepConfigImport_MiddleSymbol(t *testing.T) {
	content := `import { WorkflowStep, WorkflowStepConfig, StepResult } from "../engine/WorkflowStep.js";` + "\n"

	result := StripStepConfigImport(content)

	// No dangling comma is left behind
	assert.Equal(t, `import { WorkflowStep, StepResult } from "../engine/WorkflowStep.js";`+"\n", result)
}

func TestStripStepConfigImport_TrailingSymbol(t *testing.T) {
	content := `import { WorkflowStep, WorkflowStepConfig } from "../engine/WorkflowStep.js";` + "\n"

	result := StripStepConfigImport(content)

	assert.Equal(t, `import { WorkflowStep } from "../engine/WorkflowStep.js";`+"\n", result)
}

func TestStripStepConfigImport_OtherModulePathUntouched(t *testing.T) {
	content := `import { A, WorkflowStepConfig } from "../other/Module.js";` + "\n"

	assert.Equal(t, content, StripStepConfigImport(content))
}

func TestStripStepConfigImport_Idempotent(t *testing.T) {
	content := `import { WorkflowStep, WorkflowStepConfig, StepResult } from "../engine/WorkflowStep.js";` + "\n"

	once := StripStepConfigImport(content)
	twice := StripStepConfigImport(once)

	assert.Equal(t, once, twice)
}

func TestStripCoordinatorImport_SoleOccurrenceRemovesImportLine(t *testing.T) {
	content := `import { WorkflowCoordinator } from "../src/workflows/coordinator.js";` + "\n" +
		`import { makeHarness } from "./helpers.js";` + "\n"

	result := StripCoordinatorImport(content)

	assert.Equal(t, CoordinatorFixed, result.Outcome)
	assert.Equal(t, `import { makeHarness } from "./helpers.js";`+"\n", result.Content)
}

func TestStripCoordinatorImport_UsedElsewhereLeavesFileUnchanged(t *testing.T) {
	content := `import { WorkflowCoordinator } from "../src/workflows/coordinator.js";` + "\n" +
		`const c = new WorkflowCoordinator();` + "\n"

	result := StripCoordinatorImport(content)

	assert.Equal(t, CoordinatorUsed, result.Outcome)
	assert.Equal(t, content, result.Content)
	assert.Equal(t, 2, result.Count)
}

func TestStripCoordinatorImport_SymbolAbsent(t *testing.T) {
	content := `import { makeHarness } from "./helpers.js";` + "\n"

	result := StripCoordinatorImport(content)

	assert.Equal(t, CoordinatorNotFound, result.Outcome)
	assert.Equal(t, content, result.Content)
}

func TestStripCoordinatorImport_Idempotent(t *testing.T) {
	content := `import { WorkflowCoordinator } from "../src/workflows/coordinator.js";` + "\n"

	first := StripCoordinatorImport(content)
	assert.Equal(t, CoordinatorFixed, first.Outcome)

	second := StripCoordinatorImport(first.Content)
	assert.Equal(t, CoordinatorNotFound, second.Outcome)
	assert.Equal(t, first.Content, second.Content)
}
