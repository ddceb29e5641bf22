package usecase

// System prompt for the assistant reply call. Document generation has
// its own prompts in internal/docgen.
const (
	SystemPromptPlanner = `You are a project planning assistant. You walk the user through three
sequential phases: requirements, design, and tasks. In each phase, ask focused questions
to gather what the phase needs, one or two at a time. Keep replies short and conversational.
Do not write the phase document yourself; the system generates it when the phase is ready.`
)

// Transition notes appended to the assistant reply when a document is
// generated and the phase advances.
const (
	NoteRequirementsGenerated = "\n\n📄 I've put together the requirements document — you can download it now. Let's move on to the design phase: how do you picture the technical side of this?"
	NoteDesignGenerated       = "\n\n📄 The design document is ready for download. Next up is the tasks phase: let's break the work into concrete steps."
	NoteTasksGenerated        = "\n\n📄 The task list is generated — that completes the planning. All three documents are available for download."
)

const (
	// maxProjectNameLen bounds the project name derived from the first message.
	maxProjectNameLen = 60

	// maxDocumentHistory bounds how many displaced document versions are retained.
	maxDocumentHistory = 5
)
