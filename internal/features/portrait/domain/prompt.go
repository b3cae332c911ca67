package domain

import "fmt"

// Languages of the prompt pipeline.
const (
	SourceLanguage = "ko"
	TargetLanguage = "en"
)

// promptTemplate asks for a white-background, animated (not photorealistic) travel mate.
const promptTemplate = "여행 메이트의 성격은 '%s', 외모는 '%s'입니다. 메이트의 이미지는 흰 배경으로 합니다. 메이트는 실사가 아닌 애니매이션 캐릭터 느낌으로 생성합니다."

// BuildPrompt renders the Korean prompt for a character.
// The name is not part of the prompt and the fields are substituted verbatim.
func BuildPrompt(req *CharacterRequest) string {
	return fmt.Sprintf(promptTemplate, req.GetPersonality(), req.GetAppearance())
}
