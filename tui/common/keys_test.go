package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ToggleHints.Keys()) == 0 || km.ToggleHints.Keys()[0] != "?" {
		t.Fatalf("expected ? key binding for hints")
	}
	if len(km.Quit.Keys()) < 2 || km.Quit.Keys()[1] != "ctrl+c" {
		t.Fatalf("expected ctrl+c quit binding")
	}
	if km.Reply.Keys()[0] != "r" || km.SubmitForm.Keys()[0] != "ctrl+s" {
		t.Fatalf("reply bindings changed: %v %v", km.Reply.Keys(), km.SubmitForm.Keys())
	}
}

func TestDefaultKeyMap_NoDuplicateSingleKeys(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]string{}
	bindings := map[string][]string{
		"quit": km.Quit.Keys(), "refresh": km.Refresh.Keys(), "up": km.Up.Keys(), "down": km.Down.Keys(),
		"nav": km.FocusNav.Keys(), "select": km.Select.Keys(), "comments": km.LoadComments.Keys(),
		"reply": km.Reply.Keys(), "submit": km.Submit.Keys(), "submitForm": km.SubmitForm.Keys(),
		"resume": km.Resume.Keys(), "cancel": km.Cancel.Keys(), "top": km.SortTop.Keys(),
		"new": km.SortNew.Keys(), "next": km.NextPage.Keys(), "prev": km.PrevPage.Keys(),
		"back": km.Back.Keys(), "search": km.Search.Keys(), "post": km.NewPost.Keys(),
		"up vote": km.Upvote.Keys(), "down vote": km.Downvote.Keys(), "open": km.Open.Keys(), "preview": km.Preview.Keys(),
		"hints": km.ToggleHints.Keys(),
	}
	for name, keys := range bindings {
		for _, k := range keys {
			if other, ok := seen[k]; ok {
				t.Fatalf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}
