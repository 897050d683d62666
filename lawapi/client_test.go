package lawapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponseXML = `<?xml version="1.0" encoding="UTF-8"?>
<LawSearch>
	<target>lsStmd</target>
	<totalCnt>2</totalCnt>
	<law id="1">
		<법령일련번호>248613</법령일련번호>
		<법령명한글>상법</법령명한글>
		<공포일자>20200229</공포일자>
		<시행일자>20200229</시행일자>
		<소관부처명>법무부</소관부처명>
		<법령구분명>법률</법령구분명>
	</law>
	<law id="2">
		<법령ID>001706</법령ID>
		<법령명>민법</법령명>
		<공포일자>20230101</공포일자>
		<시행일자>20230701</시행일자>
		<소관부처>법무부</소관부처>
		<법령구분>법률</법령구분>
	</law>
</LawSearch>`

const detailResponseXML = `<?xml version="1.0" encoding="UTF-8"?>
<법령>
	<기본정보>
		<법령ID>001706</법령ID>
		<법령명>상법</법령명>
		<공포일자>19620120</공포일자>
		<시행일자>19630101</시행일자>
	</기본정보>
	<조문>
		<조문번호>1</조문번호>
		<조문제목>목적</조문제목>
		<조문내용>이 법은 상사에 관한 기본법으로 한다.</조문내용>
	</조문>
	<조문>
		<조문번호>2</조문번호>
		<조문제목>정의</조문제목>
		<조문내용>이 법에서 사용하는 용어의 뜻은 다음과 같다.</조문내용>
	</조문>
</법령>`

func TestClientNotConfigured(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient("", server.URL, server.URL)
	assert.False(t, client.Configured())

	_, err := client.SearchLaws(context.Background(), "상법", "law", 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "API not configured. Please set LAW_GO_KR_OC in .env file.", err.Error())

	_, err = client.GetLawDetail(context.Background(), "248613")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "API not configured", err.Error())

	assert.Zero(t, requests, "unconfigured client must not touch the network")
}

func TestSearchLaws(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, searchResponseXML)
	}))
	defer server.Close()

	client := NewClient("testoc", server.URL, server.URL)
	assert.True(t, client.Configured())

	result, err := client.SearchLaws(context.Background(), "상법", "law", 1, 10)
	require.NoError(t, err)

	t.Run("query parameters", func(t *testing.T) {
		assert.Equal(t, "testoc", gotQuery.Get("OC"))
		assert.Equal(t, "lsStmd", gotQuery.Get("target"))
		assert.Equal(t, "XML", gotQuery.Get("type"))
		assert.Equal(t, "상법", gotQuery.Get("query"))
		assert.Equal(t, "10", gotQuery.Get("display"))
		assert.Equal(t, "1", gotQuery.Get("page"))
	})

	t.Run("parsed result", func(t *testing.T) {
		assert.Equal(t, 2, result.TotalCount)
		require.Len(t, result.Laws, 2)

		first := result.Laws[0]
		assert.Equal(t, "248613", first.LawID)
		assert.Equal(t, "상법", first.LawName)
		assert.Equal(t, "20200229", first.PromulgationDate)
		assert.Equal(t, "20200229", first.EnforcementDate)
		assert.Equal(t, "법무부", first.Ministry)
		assert.Equal(t, "법률", first.LawType)
	})

	t.Run("alternate tag names coalesce", func(t *testing.T) {
		second := result.Laws[1]
		assert.Equal(t, "001706", second.LawID)
		assert.Equal(t, "민법", second.LawName)
		assert.Equal(t, "법무부", second.Ministry)
		assert.Equal(t, "법률", second.LawType)
	})
}

func TestSearchLawsDisplayCap(t *testing.T) {
	var gotDisplay string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDisplay = r.URL.Query().Get("display")
		fmt.Fprint(w, `<LawSearch><totalCnt>0</totalCnt></LawSearch>`)
	}))
	defer server.Close()

	client := NewClient("testoc", server.URL, server.URL)
	result, err := client.SearchLaws(context.Background(), "상법", "law", 1, 500)
	require.NoError(t, err)

	assert.Equal(t, "100", gotDisplay)
	assert.Equal(t, 0, result.TotalCount)
	assert.NotNil(t, result.Laws)
	assert.Empty(t, result.Laws)
}

func TestSearchLawsErrors(t *testing.T) {
	t.Run("http error carries status text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("testoc", server.URL, server.URL)
		_, err := client.SearchLaws(context.Background(), "상법", "law", 1, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP error: 500")
	})

	t.Run("malformed xml", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<LawSearch><law>`)
		}))
		defer server.Close()

		client := NewClient("testoc", server.URL, server.URL)
		_, err := client.SearchLaws(context.Background(), "상법", "law", 1, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "XML parsing error")
	})

	t.Run("garbage total count is tolerated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<LawSearch><totalCnt>many</totalCnt></LawSearch>`)
		}))
		defer server.Close()

		client := NewClient("testoc", server.URL, server.URL)
		result, err := client.SearchLaws(context.Background(), "상법", "law", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalCount)
	})
}

func TestGetLawDetail(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, detailResponseXML)
	}))
	defer server.Close()

	client := NewClient("testoc", server.URL, server.URL)
	detail, err := client.GetLawDetail(context.Background(), "248613")
	require.NoError(t, err)

	t.Run("query parameters", func(t *testing.T) {
		assert.Equal(t, "testoc", gotQuery.Get("OC"))
		assert.Equal(t, "law", gotQuery.Get("target"))
		assert.Equal(t, "XML", gotQuery.Get("type"))
		assert.Equal(t, "248613", gotQuery.Get("MST"))
	})

	t.Run("fields harvested from nested elements", func(t *testing.T) {
		assert.True(t, detail.Success)
		assert.Equal(t, "001706", detail.LawID)
		assert.Equal(t, "상법", detail.LawName)
		assert.Equal(t, "19620120", detail.PromulgationDate)
		assert.Equal(t, "19630101", detail.EnforcementDate)
	})

	t.Run("articles in document order", func(t *testing.T) {
		require.Len(t, detail.Articles, 2)
		assert.Equal(t, "1", detail.Articles[0].Number)
		assert.Equal(t, "목적", detail.Articles[0].Title)
		assert.Equal(t, "2", detail.Articles[1].Number)
		assert.Equal(t, "정의", detail.Articles[1].Title)
	})
}

func TestGetLawDetailFallbacks(t *testing.T) {
	t.Run("law id falls back to MST", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<법령><MST>248613</MST><법령명>상법</법령명></법령>`)
		}))
		defer server.Close()

		client := NewClient("testoc", server.URL, server.URL)
		detail, err := client.GetLawDetail(context.Background(), "248613")
		require.NoError(t, err)
		assert.Equal(t, "248613", detail.LawID)
		assert.Empty(t, detail.Articles)
		assert.NotNil(t, detail.Articles)
	})

	t.Run("upstream 404 keeps not found wording", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewClient("testoc", server.URL, server.URL)
		_, err := client.GetLawDetail(context.Background(), "248613")
		require.Error(t, err)
		assert.Contains(t, strings.ToLower(err.Error()), "not found")
	})
}
