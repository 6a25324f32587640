// ABOUTME: Prompt templates for article analysis
// ABOUTME: Fixed instruction text submitted to the chat model

package news

import (
	"fmt"

	"lexassist-api/core/domain"
)

// analystSystemPrompt establishes the model's role for article analysis
const analystSystemPrompt = `As an expert Legal Advisor specializing in Indian law, your role is to provide accurate, comprehensive, and nuanced responses to legal inquiries. Utilize your extensive knowledge of Indian jurisprudence, including statutes, case law, and legal principles to formulate your answers.`

// articleAnalysisPrompt composes the fixed analysis instruction for one article
func articleAnalysisPrompt(article domain.Article) string {
	return fmt.Sprintf(`Provide a detailed analysis of the following news article:

Title: %s
Description: %s
Content: %s

Please include:
1. A summary of the article
2. Key points and their implications
3. Background information on the topic
4. Potential future developments
5. Related articles or resources for further reading`,
		article.Title, article.Description, article.Content)
}
