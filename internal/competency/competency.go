package competency

// Competency identifies one assessed competency area.
type Competency string

const (
	Fundamentals      Competency = "ai-ml-fundamentals"
	EverydayTools     Competency = "everyday-ai-tools"
	PromptEngineering Competency = "prompt-engineering"
	DataRAG           Competency = "data-and-rag"
	Automation        Competency = "process-automation"
	Ethics            Competency = "ethics-and-compliance"
	ProductBusiness   Competency = "product-and-business"
	CodeNoCode        Competency = "code-no-code"
	LLMOps            Competency = "llmops-and-quality"
)

// All returns every competency in declaration order. The order is part of
// the contract: recommendation tie-breaks and report layout follow it.
func All() []Competency {
	return []Competency{
		Fundamentals,
		EverydayTools,
		PromptEngineering,
		DataRAG,
		Automation,
		Ethics,
		ProductBusiness,
		CodeNoCode,
		LLMOps,
	}
}

// IsValid reports whether c is a known competency.
func IsValid(c Competency) bool {
	for _, known := range All() {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for a competency.
func DisplayName(c Competency) string {
	switch c {
	case Fundamentals:
		return "AI/ML Fundamentals & LLMs"
	case EverydayTools:
		return "Everyday AI Tools"
	case PromptEngineering:
		return "Prompt Engineering & Orchestration"
	case DataRAG:
		return "Data & Context (RAG)"
	case Automation:
		return "Process Automation with AI"
	case Ethics:
		return "Ethics, Safety & Compliance"
	case ProductBusiness:
		return "AI Product & Business"
	case CodeNoCode:
		return "Code/No-code for AI"
	case LLMOps:
		return "LLMOps & Quality"
	default:
		return string(c)
	}
}
