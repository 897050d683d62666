package lawapi

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"lawbridge-backend/models"
)

// xmlNode is a generic element tree. The DRF feeds nest their payloads
// inconsistently, so fields are harvested by descendant search rather than
// by fixed structs.
type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// findText returns the text of the first descendant element with the given
// local name, in document order, or "" when absent.
func (n *xmlNode) findText(name string) string {
	text, _ := n.find(name)
	return text
}

func (n *xmlNode) find(name string) (string, bool) {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			return child.Text, true
		}
		if text, ok := child.find(name); ok {
			return text, true
		}
	}
	return "", false
}

// findAll returns every descendant element with the given local name, in
// document order.
func (n *xmlNode) findAll(name string) []*xmlNode {
	var found []*xmlNode
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			found = append(found, child)
		}
		found = append(found, child.findAll(name)...)
	}
	return found
}

// parseSearchResponse parses an lsStmd search response. Alternate tag names
// seen in the feed are coalesced per field.
func parseSearchResponse(data []byte) (*SearchResult, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("XML parsing error: %w", err)
	}

	result := &SearchResult{Laws: []models.LawSummary{}}
	if text := strings.TrimSpace(root.findText("totalCnt")); text != "" {
		if n, err := strconv.Atoi(text); err == nil {
			result.TotalCount = n
		}
	}

	for _, item := range root.findAll("law") {
		result.Laws = append(result.Laws, models.LawSummary{
			LawID:            firstNonEmpty(item.findText("법령일련번호"), item.findText("법령ID"), item.findText("MST")),
			LawName:          firstNonEmpty(item.findText("법령명한글"), item.findText("법령명")),
			PromulgationDate: item.findText("공포일자"),
			EnforcementDate:  item.findText("시행일자"),
			Ministry:         firstNonEmpty(item.findText("소관부처명"), item.findText("소관부처")),
			LawType:          firstNonEmpty(item.findText("법령구분명"), item.findText("법령구분")),
		})
	}

	return result, nil
}

// parseDetailResponse parses a statute detail response into the article
// breakdown.
func parseDetailResponse(data []byte) (*models.LawDetail, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("XML parsing error: %w", err)
	}

	detail := &models.LawDetail{
		Success:          true,
		LawID:            firstNonEmpty(root.findText("법령ID"), root.findText("MST")),
		LawName:          root.findText("법령명"),
		PromulgationDate: root.findText("공포일자"),
		EnforcementDate:  root.findText("시행일자"),
		Articles:         []models.LawArticle{},
	}

	for _, article := range root.findAll("조문") {
		detail.Articles = append(detail.Articles, models.LawArticle{
			Number:  article.findText("조문번호"),
			Title:   article.findText("조문제목"),
			Content: article.findText("조문내용"),
		})
	}

	return detail, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
