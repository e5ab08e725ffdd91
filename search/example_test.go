package search_test

import (
	"fmt"
	"log"

	"github.com/jonwraymond/matchsort"
	"github.com/jonwraymond/matchsort/search"
)

func ExampleBM25Sorter_Sort() {
	docs := []search.Doc{
		{ID: "0", Fields: map[string]string{"name": "deploy service", "desc": "push a build to production"}},
		{ID: "1", Fields: map[string]string{"name": "tail logs", "desc": "stream service output"}},
	}

	sorter := search.NewBM25Sorter(search.Config{})
	defer sorter.Close()

	ordered, err := sorter.Sort("deploy", 10, docs)
	if err != nil {
		log.Fatal(err)
	}
	for _, doc := range ordered {
		fmt.Println(doc.Fields["name"])
	}
	// Output:
	// deploy service
}

func ExampleDocs() {
	type runbook struct {
		Title string
		Body  string
	}
	items := []runbook{
		{Title: "rotate credentials", Body: "steps to rotate service credentials"},
	}

	docs := search.Docs(items,
		matchsort.Field("title", func(r runbook) string { return r.Title }),
		matchsort.Field("body", func(r runbook) string { return r.Body }),
	)

	fmt.Println(docs[0].ID, docs[0].Fields["title"])
	// Output:
	// 0 rotate credentials
}
