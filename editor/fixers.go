package editor

import (
	"regexp"
	"strings"
)

// StepConfigFiles are the workflow step sources that still import the unused
// WorkflowStepConfig type. Paths are relative to the project root.
var StepConfigFiles = []string{
	"src/workflows/steps/ContextStep.ts",
	"src/workflows/steps/GitOperationStep.ts",
	"src/workflows/steps/MilestoneStatusCheckStep.ts",
	"src/workflows/steps/PersonaRequestStep.ts",
	"src/workflows/steps/PlanEvaluationStep.ts",
	"src/workflows/steps/PlanningLoopStep.ts",
	"src/workflows/steps/PlanningStep.ts",
	"src/workflows/steps/PullTaskStep.ts",
	"src/workflows/steps/QAStep.ts",
	"src/workflows/steps/ReviewFailureTasksStep.ts",
	"src/workflows/steps/SimpleTaskStatusStep.ts",
	"src/workflows/steps/TaskUpdateStep.ts",
	"src/workflows/steps/VariableResolutionStep.ts",
}

// CoordinatorTestFiles are the test sources that may carry a stale
// WorkflowCoordinator import. Paths are relative to the project root.
var CoordinatorTestFiles = []string{
	"tests/blockedTaskResolution.test.ts",
	"tests/commitAndPush.test.ts",
	"tests/handleCoordinator.overrides.test.ts",
	"tests/happyPath.test.ts",
	"tests/initialPlanningAckAndEval.test.ts",
	"tests/processedOnce.test.ts",
	"tests/qaFailure.test.ts",
	"tests/qaFollowupExecutes.test.ts",
	"tests/qaPlanIterationMax.test.ts",
	"tests/qaPmGating.test.ts",
}

const coordinatorSymbol = "WorkflowCoordinator"

var (
	stepConfigImportRe = regexp.MustCompile(`(import\s+\{[^}]*), WorkflowStepConfig([^}]*\}\s+from\s+['"]\.\./engine/WorkflowStep\.js['"])`)

	coordinatorImportLineRe = regexp.MustCompile(`import \{ WorkflowCoordinator \} from ['"][^'"]+['"];\n`)
	coordinatorTrailingRe   = regexp.MustCompile(`, WorkflowCoordinator`)
	coordinatorLeadingRe    = regexp.MustCompile(`WorkflowCoordinator, `)
)

// StripStepConfigImport removes ", WorkflowStepConfig" from the import of
// ../engine/WorkflowStep.js, leaving the remaining symbols and the module
// path intact. Files importing the type from anywhere else are untouched.
func StripStepConfigImport(content string) string {
	return stepConfigImportRe.ReplaceAllString(content, "${1}${2}")
}

// CoordinatorOutcome describes what StripCoordinatorImport decided for a file.
type CoordinatorOutcome int

const (
	// CoordinatorNotFound: the symbol does not appear in the file at all.
	CoordinatorNotFound CoordinatorOutcome = iota
	// CoordinatorUsed: the symbol appears beyond its import, leave the file alone.
	CoordinatorUsed
	// CoordinatorFixed: the sole occurrence was the import line, now removed.
	CoordinatorFixed
	// CoordinatorNoChange: the import looked removable but no pattern matched.
	CoordinatorNoChange
)

// CoordinatorResult carries the rewritten content together with the outcome
// and the raw occurrence count used for the decision.
type CoordinatorResult struct {
	Content string
	Outcome CoordinatorOutcome
	Count   int
}

// StripCoordinatorImport removes the WorkflowCoordinator import only when the
// import line is the sole occurrence of the symbol in the file. The gate is a
// plain substring count, so a mention in a comment counts as a use and keeps
// the import.
func StripCoordinatorImport(content string) CoordinatorResult {
	if !strings.Contains(content, coordinatorSymbol) {
		return CoordinatorResult{Content: content, Outcome: CoordinatorNotFound}
	}

	count := strings.Count(content, coordinatorSymbol)
	if count != 1 || !strings.Contains(content, "import { WorkflowCoordinator }") {
		return CoordinatorResult{Content: content, Outcome: CoordinatorUsed, Count: count}
	}

	newContent := coordinatorImportLineRe.ReplaceAllString(content, "")
	// Also handle case where it's part of a multi-line import
	newContent = coordinatorTrailingRe.ReplaceAllString(newContent, "")
	newContent = coordinatorLeadingRe.ReplaceAllString(newContent, "")

	if newContent == content {
		return CoordinatorResult{Content: content, Outcome: CoordinatorNoChange, Count: count}
	}
	return CoordinatorResult{Content: newContent, Outcome: CoordinatorFixed, Count: count}
}
